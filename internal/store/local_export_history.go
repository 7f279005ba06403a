package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type exportHistoryRepository struct {
	db     *LocalDB
	logger *logger.Logger
}

// NewExportHistoryRepository constructs an [ExportHistoryRepository].
func NewExportHistoryRepository(db *LocalDB, logger *logger.Logger) ExportHistoryRepository {
	return &exportHistoryRepository{db: db, logger: logger}
}

// SaveExport appends a record to the history.
func (r *exportHistoryRepository) SaveExport(ctx context.Context, rec models.ExportRecord) error {
	_, err := r.db.ExecContext(ctx, saveExportRecord,
		rec.ID, rec.UserID, string(rec.Format), rec.FilePath, rec.Checksum, rec.SizeBytes, rec.ItemCount, rec.CreatedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*exportHistoryRepository.SaveExport").Str("format", string(rec.Format)).Msg("failed to save export record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ListExports returns the user's exports, newest first.
func (r *exportHistoryRepository) ListExports(ctx context.Context, userID int64) ([]models.ExportRecord, error) {
	rows, err := r.db.QueryContext(ctx, listExportRecords, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*exportHistoryRepository.ListExports").Msg("failed to list exports")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ExportRecord, 0, 16)
	for rows.Next() {
		var (
			rec    models.ExportRecord
			format string
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &format, &rec.FilePath, &rec.Checksum, &rec.SizeBytes, &rec.ItemCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.Format = models.ExportFormat(format)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
