package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/benbjohnson/clock"
)

type ClientServices struct {
	AuthService      ClientAuthService
	NoteService      ClientNoteService
	BackupService    ClientBackupService
	DuplicateService ClientDuplicateService
	StorageService   ClientStorageService
	ExportService    ClientExportService
	AdminGate        AdminGate
	NoteWatcher      NoteWatcher
}

func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	sealer crypto.Sealer,
	exporter NoteExporter,
	cfg config.ClientApp,
	clk clock.Clock,
	logger *logger.Logger,
) *ClientServices {
	notes := NewClientNoteService(serverAdapter, sealer, logger)

	return &ClientServices{
		AuthService:      NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		NoteService:      notes,
		BackupService:    NewClientBackupService(notes, serverAdapter, clk, logger),
		DuplicateService: NewClientDuplicateService(notes, sealer, logger),
		StorageService:   NewClientStorageService(serverAdapter, sealer, cfg.UnlimitedAccount, logger),
		ExportService:    NewClientExportService(notes, exporter, logger),
		AdminGate:        NewAdminGate(cfg.AdminPassword),
		NoteWatcher:      NewNoteWatcher(notes, serverAdapter, clk),
	}
}
