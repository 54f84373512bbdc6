// Package service contains the resource resolvers. Each resolver
// translates a validated request into one or more store operations and a
// domain-level outcome, applying the not-found policy and raising
// domain.RequestError where the HTTP status and message are domain
// decisions.
package service
