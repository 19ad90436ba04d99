// Package api implements the HTTP layer: request DTOs, handlers, and the
// mapping from internal errors to sanitized HTTP responses. Handlers decode
// and validate input, delegate to the service layer, and never expose raw
// internal error strings to clients.
package api
