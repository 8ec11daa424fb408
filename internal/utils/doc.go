// Package utils provides small helpers shared by the client and the CLI:
// file name sanitizing, reading argument files, content type checks
// and the User-Agent provider used by the HTTP transport.
package utils
