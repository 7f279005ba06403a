package store

const (
	createUser = `INSERT INTO users (email, password_hash, email_verified)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, email_verified, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, email_verified, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, email_verified, created_at
    FROM users
    WHERE user_id = $1;`

	updatePasswordHash = `UPDATE users SET password_hash = $1 WHERE user_id = $2;`

	markEmailVerified = `UPDATE users SET email_verified = TRUE WHERE user_id = $1;`

	ensurePreferences = `INSERT INTO user_preferences (id, backup_enabled)
    VALUES ($1, TRUE)
    ON CONFLICT (id) DO NOTHING;`

	notesRevision = `SELECT COUNT(*), MAX(updated_at),
        COALESCE((SELECT revision FROM notes_revisions WHERE user_id = $1), 0)
    FROM notes
    WHERE user_id = $1;`
)

const (
	tableNotes       = "notes"
	tableBackups     = "note_backups"
	tablePreferences = "user_preferences"
)

var noteColumns = []string{"id", "user_id", "title", "content", "image_url", "created_at", "updated_at"}

var backupSummaryColumns = []string{
	"id",
	"backup_name",
	"backup_type",
	"backup_date",
	"COALESCE((backup_data->>'note_count')::int, jsonb_array_length(backup_data->'notes'))",
}

var backupColumns = []string{"id", "user_id", "backup_name", "backup_type", "backup_date", "is_deleted", "backup_data"}

var preferencesColumns = []string{"id", "backup_enabled", "last_backup_date"}
