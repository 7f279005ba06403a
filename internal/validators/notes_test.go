// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func validNote(id string) models.Note {
	return models.Note{
		ID:        id,
		OwnerID:   1,
		Title:     "U2FsdGVkX1title",
		Content:   "U2FsdGVkX1content",
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

const (
	id1 = "0190c3a6-7d0e-7cc1-b0a6-3f5d1a2b3c4d"
	id2 = "0190c3a6-7d0e-7cc1-b0a6-3f5d1a2b3c4e"
)

// ---------------------------------------------------------------------------
// Note
// ---------------------------------------------------------------------------

func TestNoteValidator_Note(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Note)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Note) {}},
		{name: "bad id", mutate: func(n *models.Note) { n.ID = "n1" }, wantErr: ErrInvalidNoteID},
		{name: "no owner", mutate: func(n *models.Note) { n.OwnerID = 0 }, wantErr: ErrInvalidUserID},
		{name: "no owner ignored when scoped", mutate: func(n *models.Note) { n.OwnerID = 0 }, fields: []string{FieldID}},
		{name: "zero created_at", mutate: func(n *models.Note) { n.CreatedAt = time.Time{} }, wantErr: ErrInvalidTimestamps},
		{name: "updated before created", mutate: func(n *models.Note) { n.UpdatedAt = testNow.Add(-time.Second) }, wantErr: ErrInvalidTimestamps},
		{name: "huge content", mutate: func(n *models.Note) { n.Content = strings.Repeat("a", MaxFieldBytes+1) }, wantErr: ErrFieldTooLong},
		{name: "huge image ref", mutate: func(n *models.Note) { n.ImageRef = strPtr(strings.Repeat("a", MaxFieldBytes+1)) }, wantErr: ErrFieldTooLong},
		{name: "unknown field", mutate: func(*models.Note) {}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := validNote(id1)
			tt.mutate(&note)

			err := v.Validate(ctx, note, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_Pointer(t *testing.T) {
	note := validNote(id1)
	assert.NoError(t, NewNoteValidator().Validate(context.Background(), &note))
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewNoteValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// NoteUpdate
// ---------------------------------------------------------------------------

func TestNoteValidator_NoteUpdate(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.NoteUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.NoteUpdate{Title: strPtr("t")}))
	assert.NoError(t, v.Validate(ctx, &models.NoteUpdate{ClearImage: true}))
	assert.ErrorIs(t, v.Validate(ctx, models.NoteUpdate{Content: strPtr(strings.Repeat("x", MaxFieldBytes+1))}), ErrFieldTooLong)
}

// ---------------------------------------------------------------------------
// InsertNotesRequest
// ---------------------------------------------------------------------------

func TestNoteValidator_InsertNotes(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("valid, owner comes from token", func(t *testing.T) {
		n1, n2 := validNote(id1), validNote(id2)
		n1.OwnerID, n2.OwnerID = 0, 0
		assert.NoError(t, v.Validate(ctx, models.InsertNotesRequest{Notes: []models.Note{n1, n2}}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.InsertNotesRequest{}), ErrEmptyNotes)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		err := v.Validate(ctx, models.InsertNotesRequest{Notes: []models.Note{validNote(id1), validNote(id1)}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateNoteIDs)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("bad entry", func(t *testing.T) {
		err := v.Validate(ctx, &models.InsertNotesRequest{Notes: []models.Note{validNote("nope")}})
		assert.ErrorIs(t, err, ErrInvalidNoteID)
	})
}

// ---------------------------------------------------------------------------
// CreateBackupRequest
// ---------------------------------------------------------------------------

func TestNoteValidator_CreateBackup(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	valid := func() models.CreateBackupRequest {
		return models.CreateBackupRequest{
			BackupName: "Manual backup",
			BackupType: models.BackupManual,
			Payload:    models.NewBackupPayload([]models.Note{validNote(id1)}, testNow),
		}
	}

	assert.NoError(t, v.Validate(ctx, valid()))

	r := valid()
	r.BackupType = "weekly"
	assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidBackupType)

	r = valid()
	r.BackupName = ""
	assert.ErrorIs(t, v.Validate(ctx, r), ErrEmptyBackupName)

	r = valid()
	r.Payload.NoteCount = 5
	assert.ErrorIs(t, v.Validate(ctx, r), ErrNoteCountMismatch)

	r = valid()
	r.Payload = models.NewBackupPayload(nil, testNow)
	assert.ErrorIs(t, v.Validate(ctx, &r), ErrEmptyNotes)
}
