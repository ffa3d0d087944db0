package catalog

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/half-nothing/simple-launch/internal/utils"
	"golang.org/x/sync/singleflight"
	"time"
)

// The first launch of the catalog. Its presence means a previous import already ran.
const (
	sentinelFlightNumber = 1
	sentinelRocket       = "Falcon 1"
	sentinelMission      = "FalconSat"
)

var _ ImporterInterface = (*Importer)(nil)

type Importer struct {
	logger          log.LoggerInterface
	config          *config.CatalogConfig
	launchOperation operation.LaunchOperationInterface
	client          *Client
	snapshotStore   SnapshotStoreInterface
	reporter        ReporterInterface
	group           singleflight.Group
}

// NewImporter creates an importer, snapshotStore and reporter are optional
func NewImporter(
	logger log.LoggerInterface,
	config *config.CatalogConfig,
	launchOperation operation.LaunchOperationInterface,
	client *Client,
	snapshotStore SnapshotStoreInterface,
	reporter ReporterInterface,
) *Importer {
	return &Importer{
		logger:          logger,
		config:          config,
		launchOperation: launchOperation,
		client:          client,
		snapshotStore:   snapshotStore,
		reporter:        reporter,
	}
}

// Load runs at most one import at a time; concurrent callers with the same force flag share the result.
// The shared run is detached from the caller, a cancelled caller stops waiting but never stops the import.
func (importer *Importer) Load(ctx context.Context, force bool) (*ImportResult, error) {
	key := "load"
	if force {
		key = "force-load"
	}
	resultChan := importer.group.DoChan(key, func() (interface{}, error) {
		importCtx, cancel := importer.importContext(ctx)
		defer cancel()
		return importer.load(importCtx, force)
	})
	select {
	case <-ctx.Done():
		importer.logger.Debug("catalog import caller stopped waiting", "force", force, "reason", ctx.Err())
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Shared {
			importer.logger.Debug("catalog import shared with a concurrent caller", "force", force)
		}
		if res.Val == nil {
			return nil, res.Err
		}
		return res.Val.(*ImportResult), res.Err
	}
}

func (importer *Importer) importContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if importer.config.ImportDuration <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, importer.config.ImportDuration)
}

func (importer *Importer) load(ctx context.Context, force bool) (*ImportResult, error) {
	result := &ImportResult{StartedAt: time.Now(), FailedFlightNumbers: make([]int, 0)}

	if !force {
		_, err := importer.launchOperation.GetLaunchBySignature(ctx, sentinelFlightNumber, sentinelRocket, sentinelMission)
		if err == nil {
			importer.logger.Info("Launch catalog already loaded, skipping import")
			result.Skipped = true
			result.FinishedAt = time.Now()
			return result, nil
		}
		if !errors.Is(err, operation.ErrLaunchNotFound) {
			return nil, err
		}
	}

	importer.logger.InfoF("Downloading launch catalog from %s", importer.config.ApiUrl)
	fetched, err := importer.client.Fetch(ctx)
	if err != nil {
		importer.logger.ErrorF("Problem downloading launch catalog: %v", err)
		importer.report(result, err)
		return nil, err
	}

	result.Total = len(fetched.Docs)
	result.Snapshot = importer.saveSnapshot(ctx, fetched.Raw)

	progress := utils.NewOverflowTrigger(importer.config.ProgressInterval, func() {
		importer.logger.InfoF("Imported %d of %d catalog launches", result.Saved+result.Failed(), result.Total)
	})
	for _, document := range fetched.Docs {
		if err := ctx.Err(); err != nil {
			result.FinishedAt = time.Now()
			importer.logger.ErrorF("Launch catalog import stopped after %d of %d launches: %v",
				result.Saved+result.Failed(), result.Total, err)
			importer.report(result, err)
			return result, err
		}
		if err := importer.saveDocument(ctx, document); err != nil {
			importer.logger.WarnF("Failed to import catalog launch %d: %v", document.FlightNumber, err)
			result.FailedFlightNumbers = append(result.FailedFlightNumbers, document.FlightNumber)
		} else {
			result.Saved++
		}
		progress.Tick()
	}

	result.FinishedAt = time.Now()
	if result.Failed() > 0 {
		importer.logger.WarnF("Launch catalog imported with failures, %d saved, %d failed (%v)",
			result.Saved, result.Failed(), result.FailedFlightNumbers)
	} else {
		importer.logger.InfoF("Launch catalog imported, %d launches saved in %s", result.Saved, result.Duration())
	}
	importer.report(result, nil)
	return result, nil
}

func (importer *Importer) saveDocument(ctx context.Context, document *Document) error {
	launch, err := document.ToLaunch()
	if err != nil {
		return err
	}
	return importer.launchOperation.SaveLaunch(ctx, launch)
}

func (importer *Importer) saveSnapshot(ctx context.Context, raw []byte) *SnapshotInfo {
	if importer.snapshotStore == nil {
		return nil
	}
	info, err := importer.snapshotStore.SaveSnapshot(ctx, raw)
	if err != nil {
		importer.logger.WarnF("Failed to archive launch catalog snapshot: %v", err)
		return nil
	}
	importer.logger.InfoF("Launch catalog snapshot archived as %s", info.FileName)
	return info
}

func (importer *Importer) report(result *ImportResult, err error) {
	if importer.reporter == nil {
		return
	}
	if reportErr := importer.reporter.Report(result, err); reportErr != nil {
		importer.logger.WarnF("Failed to send catalog import report: %v", reportErr)
	}
}
