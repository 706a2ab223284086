// Package api assembles the cardscan HTTP surface: request ID, client IP and
// access log middleware, health probes, and the versioned scan routes.
package api
