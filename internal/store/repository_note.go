package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Field values are stored exactly as received: the server
// never opens or seals note fields.
type noteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note     models.Note
		imageRef sql.NullString
	)
	if err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &imageRef, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return models.Note{}, err
	}
	if imageRef.Valid {
		note.ImageRef = &imageRef.String
	}
	return note, nil
}

// ListNotes returns all notes of the user, most recently updated first.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote returns one note of the user.
func (r *noteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	query, args, err := buildGetNoteQuery(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.GetNote", query, args)
}

// CreateNote stores a new note. ID and timestamps must be set by the caller.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildInsertNoteQuery(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryNote(ctx, "*noteRepository.CreateNote", query, args)
	if isUniqueViolation(err) {
		return models.Note{}, ErrNoteAlreadyExists
	}
	return created, err
}

// InsertNotes stores notes verbatim inside one transaction. Notes whose ID
// already exists are skipped.
func (r *noteRepository) InsertNotes(ctx context.Context, userID int64, notes []models.Note) (int, error) {
	log := logger.FromContext(ctx)

	if len(notes) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.InsertNotes").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.classify(err))
	}
	defer tx.Rollback()

	inserted := 0
	for i, note := range notes {
		note.OwnerID = userID

		query, args, buildErr := buildInsertNoteIfAbsentQuery(ctx, note)
		if buildErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "*noteRepository.InsertNotes").
				Int("iteration", i).
				Str("note_id", note.ID).
				Msg("failed to insert note")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(execErr))
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		inserted += int(affected)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.InsertNotes").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.classify(err))
	}

	return inserted, nil
}

// UpdateNote applies a partial update and returns the updated note.
func (r *noteRepository) UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(ctx, userID, noteID, update, r.now().UTC())
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.UpdateNote", query, args)
}

// DeleteNote removes the note and returns its last state, so the caller can
// clean up attachments it referenced.
func (r *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	query, args, err := buildDeleteNoteQuery(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.DeleteNote", query, args)
}

// Revision returns the count and latest update time of the user's notes
// together with the write counter kept by the notes_revision_bump trigger.
func (r *noteRepository) Revision(ctx context.Context, userID int64) (models.NotesRevision, error) {
	var (
		rev         models.NotesRevision
		lastUpdated sql.NullTime
	)

	if err := r.DB.QueryRowContext(ctx, notesRevision, userID).Scan(&rev.Count, &lastUpdated, &rev.Seq); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteRepository.Revision").
			Int64("user_id", userID).
			Msg("failed to read notes revision")
		return models.NotesRevision{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	if lastUpdated.Valid {
		t := lastUpdated.Time
		rev.LastUpdatedAt = &t
	}

	return rev, nil
}

// queryNote runs a query returning a single note row.
func (r *noteRepository) queryNote(ctx context.Context, fn, query string, args []any) (models.Note, error) {
	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("note query failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}

	return note, nil
}
