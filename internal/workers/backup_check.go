// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/benbjohnson/clock"
)

// DefaultBackupCheckDelay lets the session settle before the check runs.
const DefaultBackupCheckDelay = 5 * time.Second

// BackupCheck runs the automatic backup check once per session, delay after
// Run.
type BackupCheck struct {
	backups service.ClientBackupService
	session models.Session
	delay   time.Duration
	clock   clock.Clock
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBackupCheck(backups service.ClientBackupService, sess models.Session, delay time.Duration, clk clock.Clock, log *logger.Logger) *BackupCheck {
	if delay <= 0 {
		delay = DefaultBackupCheckDelay
	}
	if clk == nil {
		clk = clock.New()
	}
	return &BackupCheck{
		backups: backups,
		session: sess,
		delay:   delay,
		clock:   clk,
		logger:  log,
	}
}

func (b *BackupCheck) Run(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	timer := b.clock.Timer(b.delay)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer timer.Stop()

		select {
		case <-jobCtx.Done():
			return
		case <-timer.C:
		}

		created, err := b.backups.ScheduleCheck(jobCtx, b.session)
		if err != nil {
			b.logger.Warn().Err(err).Str("func", "*BackupCheck.Run").Int64("user_id", b.session.UserID).Msg("automatic backup check failed")
			return
		}
		b.logger.Debug().Str("func", "*BackupCheck.Run").Bool("created", created).Msg("automatic backup check done")
	}()
}

func (b *BackupCheck) Stop() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()
	b.wg.Wait()
}
