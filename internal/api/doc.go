// Package api contains the HTTP handlers, the per-endpoint response
// projections, and the ordered error classification chain that turns
// storage and domain failures into the stable HTTP error taxonomy.
package api
