package launch

import (
	"context"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

type Aborter struct {
	logger          log.LoggerInterface
	launchOperation operation.LaunchOperationInterface
}

func NewAborter(logger log.LoggerInterface, launchOperation operation.LaunchOperationInterface) *Aborter {
	return &Aborter{logger: logger, launchOperation: launchOperation}
}

// Abort marks the launch as no longer upcoming and unsuccessful.
// Aborting an aborted launch succeeds without changing it.
func (aborter *Aborter) Abort(ctx context.Context, flightNumber int) error {
	if _, err := aborter.launchOperation.GetLaunchByFlightNumber(ctx, flightNumber); err != nil {
		return err
	}

	matched, err := aborter.launchOperation.UpdateLaunchStatus(ctx, flightNumber, operation.AbortedStatus)
	if err != nil {
		return err
	}
	if matched == 0 {
		aborter.logger.WarnF("Launch %d existed but the abort update matched nothing", flightNumber)
		return ErrNotAborted
	}

	aborter.logger.InfoF("Launch %d aborted", flightNumber)
	return nil
}
