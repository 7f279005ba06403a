package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// notesChangedMsg carries a list pushed by the background watcher.
type notesChangedMsg struct {
	notes []models.Note
}

type noteDeletedMsg struct {
	result models.DeleteResult
	err    error
}

type backupDoneMsg struct {
	backup models.Backup
	err    error
}

type sessionEndedMsg struct{}
