// Package server runs the notes HTTP server: startup, signal handling and
// graceful shutdown.
package server
