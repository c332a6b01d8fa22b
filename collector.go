package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SnapshotCollector ties the Drive downloader, the CSV decoder and the
// database together: download, decode, atomically replace.
type SnapshotCollector struct {
	drive    *GDriveClient
	database *Database
	log      *zap.SugaredLogger
}

func NewSnapshotCollector(cfg *Config, log *zap.SugaredLogger) (*SnapshotCollector, error) {
	database, err := NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	drive := NewGDriveClient(time.Duration(cfg.Source.Timeout)*time.Second, cfg.Source.Retries, log)

	return &SnapshotCollector{
		drive:    drive,
		database: database,
		log:      log,
	}, nil
}

// RefreshSnapshot downloads the snapshot file and replaces the loaded table
// with its contents.
func (sc *SnapshotCollector) RefreshSnapshot(fileID string) (*SnapshotMeta, error) {
	if fileID == "" {
		return nil, fmt.Errorf("no Google Drive file id configured")
	}

	data, err := sc.drive.DownloadCSV(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot: %w", err)
	}

	quotes, err := DecodeSnapshotCSV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	meta := SnapshotMeta{
		FileID:   fileID,
		RowCount: len(quotes),
		LoadedAt: time.Now(),
	}
	for _, q := range quotes {
		if meta.FirstDate.IsZero() || q.Date.Before(meta.FirstDate) {
			meta.FirstDate = q.Date
		}
		if q.Date.After(meta.LastDate) {
			meta.LastDate = q.Date
		}
	}

	if err := sc.database.ReplaceSnapshot(quotes, meta); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	sc.log.Infof("Snapshot loaded: %d rows, %s to %s",
		meta.RowCount,
		meta.FirstDate.Format("2006-01-02"),
		meta.LastDate.Format("2006-01-02"))

	return &meta, nil
}

func (sc *SnapshotCollector) Close() {
	if sc.database != nil {
		sc.database.Close()
	}
}
