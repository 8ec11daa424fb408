// Package http provides the round-trippers the registry client is built from:
// request/response logging and User-Agent header injection.
package http
