package models

import "time"

// Note is a single user note as stored by the remote store.
//
// Title, Content and ImageRef travel in envelope form: the client seals every
// field independently before persistence and opens them after retrieval.
// Values that do not carry the envelope marker are legacy plaintext and are
// passed through unchanged.
type Note struct {
	// ID is the client- or server-generated UUID of the note.
	ID string `json:"id"`

	// OwnerID is the identifier of the user the note belongs to.
	// It is always taken from the authenticated principal, never from input.
	OwnerID int64 `json:"owner_id"`

	// Title is the note title (ciphertext or legacy plaintext at rest).
	Title string `json:"title"`

	// Content is the note body, HTML produced by the rich-text editor
	// (ciphertext or legacy plaintext at rest).
	Content string `json:"content"`

	// ImageRef is an optional reference to an image attachment in the
	// "images" bucket (ciphertext or legacy plaintext at rest).
	ImageRef *string `json:"image_url,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last modification timestamp. Used as the tie-break
	// key by the duplicate reconciler.
	UpdatedAt time.Time `json:"updated_at"`
}

// HasImage reports whether the note references an image attachment.
func (n Note) HasImage() bool {
	return n.ImageRef != nil && *n.ImageRef != ""
}

// NoteInput carries plaintext fields for a new note.
type NoteInput struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageRef *string `json:"image_url,omitempty"`
}

// NoteUpdate is a partial update of a note. Only non-nil fields are applied.
//
// ClearImage removes the image reference; it takes precedence over ImageRef.
type NoteUpdate struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	ImageRef   *string `json:"image_url,omitempty"`
	ClearImage bool    `json:"clear_image,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.ImageRef == nil && !u.ClearImage
}

// NotesRevision is a cheap fingerprint of a user's notes collection.
// Seq grows with every write to the user's notes, so a delete followed by
// a restore of an older note still changes the revision.
type NotesRevision struct {
	Count         int        `json:"count"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
	Seq           int64      `json:"seq"`
}

// Equal reports whether two revisions describe the same collection state.
func (r NotesRevision) Equal(other NotesRevision) bool {
	if r.Count != other.Count || r.Seq != other.Seq {
		return false
	}
	if r.LastUpdatedAt == nil || other.LastUpdatedAt == nil {
		return r.LastUpdatedAt == nil && other.LastUpdatedAt == nil
	}
	return r.LastUpdatedAt.Equal(*other.LastUpdatedAt)
}

// DeleteResult describes the outcome of a single note deletion.
//
// AttachmentErr is set when the note was deleted but the referenced
// attachment could not be removed. It is informational only.
type DeleteResult struct {
	NoteID        string
	AttachmentErr error
}

// BatchResult summarises a sequence of independent operations that tolerate
// partial completion (bulk delete, duplicate collapse).
type BatchResult struct {
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Failed    []string `json:"failed,omitempty"`
}

// DuplicateReport is the outcome of a duplicate collapse run.
type DuplicateReport struct {
	// Groups is the number of duplicate sets found (sets of size > 1).
	Groups int
	// Deleted is the total number of notes removed across all groups.
	Deleted int
	// Kept holds the IDs of the retained note of each group.
	Kept []string
	// Failed holds the IDs of duplicates whose deletion failed.
	Failed []string
}
