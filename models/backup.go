package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// BackupType tells how a backup was triggered.
type BackupType string

const (
	// BackupManual is a backup created on an explicit user request.
	BackupManual BackupType = "manual"
	// BackupAuto is a backup created by the daily staleness check.
	BackupAuto BackupType = "auto"
)

// Valid reports whether t is a known backup type.
func (t BackupType) Valid() bool {
	return t == BackupManual || t == BackupAuto
}

// RestoreStrategy selects how backup notes are applied to the live set.
type RestoreStrategy string

// RestoreMerge only adds notes missing from the live set; it never
// overwrites or removes existing notes.
const RestoreMerge RestoreStrategy = "merge"

// CurrentPayloadVersion is the payload schema version written by this client.
const CurrentPayloadVersion = 1

// ErrUnsupportedPayloadVersion is returned when a backup payload carries a
// schema version this client does not understand.
var ErrUnsupportedPayloadVersion = errors.New("unsupported backup payload version")

// Backup is a snapshot of a user's notes stored in the note_backups table.
//
// Deleted backups are tombstoned (IsDeleted) and excluded from listings but
// never physically removed.
type Backup struct {
	ID         string        `json:"id"`
	OwnerID    int64         `json:"owner_id"`
	BackupName string        `json:"backup_name"`
	BackupType BackupType    `json:"backup_type"`
	BackupDate time.Time     `json:"backup_date"`
	IsDeleted  bool          `json:"is_deleted"`
	Payload    BackupPayload `json:"backup_data"`
}

// BackupPayload is the versioned body of a backup record.
//
// Notes keep their envelope-encrypted field values verbatim; a payload is
// never decrypted or re-encrypted at rest.
type BackupPayload struct {
	PayloadVersion int       `json:"payload_version"`
	Notes          []Note    `json:"notes"`
	NoteCount      int       `json:"note_count"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewBackupPayload snapshots notes into a payload of the current version.
func NewBackupPayload(notes []Note, now time.Time) BackupPayload {
	snapshot := make([]Note, len(notes))
	copy(snapshot, notes)
	return BackupPayload{
		PayloadVersion: CurrentPayloadVersion,
		Notes:          snapshot,
		NoteCount:      len(snapshot),
		Timestamp:      now,
	}
}

// UnmarshalJSON decodes a payload and checks its schema version.
// Payloads written before versioning was introduced carry no version and
// are read as version 1.
func (p *BackupPayload) UnmarshalJSON(b []byte) error {
	type rawPayload BackupPayload
	var raw rawPayload
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw.PayloadVersion == 0 {
		raw.PayloadVersion = 1
	}
	if raw.PayloadVersion < 1 || raw.PayloadVersion > CurrentPayloadVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedPayloadVersion, raw.PayloadVersion)
	}
	if raw.NoteCount == 0 {
		raw.NoteCount = len(raw.Notes)
	}

	*p = BackupPayload(raw)
	return nil
}

// BackupSummary is the listing view of a backup without its payload.
type BackupSummary struct {
	ID         string     `json:"id"`
	BackupName string     `json:"backup_name"`
	BackupType BackupType `json:"backup_type"`
	BackupDate time.Time  `json:"backup_date"`
	NoteCount  int        `json:"note_count"`
}
