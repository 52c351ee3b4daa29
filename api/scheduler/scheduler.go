// Package scheduler runs the periodic reconciliation jobs that keep the upload
// directory in sync with the reports collection.
package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medvault/medvault-api/databases"
)

// staleAge is how old an unreferenced file must be before the sweep removes it.
// Fresh files may belong to an upload that has not saved its document yet.
const staleAge = 24 * time.Hour

// Scheduler sweeps the upload directory for staging leftovers: files that no
// report references anymore, left behind by interrupted uploads or best-effort
// deletes.
type Scheduler struct {
	cron      *cron.Cron
	RDB       databases.ReportDatabase
	uploadDir string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(rdb databases.ReportDatabase, uploadDir string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		RDB:       rdb,
		uploadDir: uploadDir,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep orphaned upload files daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.sweepUploadDir)
	if err != nil {
		zap.S().Errorw("failed to register upload sweep job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("upload sweep scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("upload sweep scheduler stopped")
}

func (s *Scheduler) sweepUploadDir() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	referenced, err := s.RDB.DistinctFilenames(ctx)
	if err != nil {
		zap.S().Errorw("upload sweep: failed to list referenced files", "error", err)
		return
	}
	keep := make(map[string]bool, len(referenced))
	for _, name := range referenced {
		keep[name] = true
	}

	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Errorw("upload sweep: failed to read upload dir", "dir", s.uploadDir, "error", err)
		}
		return
	}

	cutoff := time.Now().Add(-staleAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || keep[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.uploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			zap.S().Warnw("upload sweep: failed to remove orphan", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		zap.S().Infow("upload sweep removed orphaned files", "count", removed)
	}
}
