// Package http is the REST transport of the notes server.
//
// Routes cover accounts and sessions, sealed notes, backups, preferences
// and the attachment object storage. Every reply body is JSON except
// attachment downloads; errors are {"error": "<message>"} where the
// message is one of the app.Msg* constants.
package http
