package server

// Server is the lifecycle of the notes API process and of the HTTP listener
// inside it. RunServer blocks until the listener is closed.
type Server interface {
	RunServer()
	Shutdown()
}
