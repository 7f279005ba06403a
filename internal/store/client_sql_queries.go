package store

const (
	saveLocalSession = `INSERT INTO local_session (id, user_id, email, token, created_at)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        user_id = excluded.user_id,
        email = excluded.email,
        token = excluded.token,
        created_at = excluded.created_at;`

	loadLocalSession = `SELECT user_id, email, token, created_at FROM local_session WHERE id = 1;`

	clearLocalSession = `DELETE FROM local_session;`

	saveExportRecord = `INSERT INTO export_history (id, user_id, format, file_path, checksum, size_bytes, item_count, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	listExportRecords = `SELECT id, user_id, format, file_path, checksum, size_bytes, item_count, created_at
    FROM export_history
    WHERE user_id = ?
    ORDER BY created_at DESC;`
)
