// Package catalog
package catalog

import (
	"context"
	"errors"
	"time"
)

var ErrCatalogFetchFailed = errors.New("catalog fetch failed")

// SnapshotInfo describes where a raw catalog response was archived
type SnapshotInfo struct {
	FileName   string `json:"fileName"`
	FilePath   string `json:"-"`
	RemotePath string `json:"remotePath,omitempty"`
	AccessUrl  string `json:"accessUrl,omitempty"`
	Size       int64  `json:"size"`
}

type ImportResult struct {
	Skipped             bool          `json:"skipped"`
	Total               int           `json:"total"`
	Saved               int           `json:"saved"`
	FailedFlightNumbers []int         `json:"failedFlightNumbers"`
	Snapshot            *SnapshotInfo `json:"snapshot,omitempty"`
	StartedAt           time.Time     `json:"startedAt"`
	FinishedAt          time.Time     `json:"finishedAt"`
}

func (result *ImportResult) Failed() int {
	return len(result.FailedFlightNumbers)
}

func (result *ImportResult) Duration() time.Duration {
	return result.FinishedAt.Sub(result.StartedAt)
}

type ImporterInterface interface {
	// Load populates the launch store from the remote catalog.
	// Unless force is set it does nothing when the first catalog launch is already stored.
	Load(ctx context.Context, force bool) (*ImportResult, error)
}

type SnapshotStoreInterface interface {
	SaveSnapshot(ctx context.Context, data []byte) (*SnapshotInfo, error)
}

type ReporterInterface interface {
	Report(result *ImportResult, err error) error
}
