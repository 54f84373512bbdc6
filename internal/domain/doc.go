// Package domain contains the core entity types for the forum content
// model (topics, articles, comments, users) along with the request-level
// error type and the allow-listed sort vocabulary shared by the API and
// storage layers.
package domain
