package worker

import (
	"context"
	"time"

	"github.com/mossvale/farmstead/internal/logger"
)

// SalesPruner deletes sales log rows older than a cutoff.
type SalesPruner interface {
	PruneSales(ctx context.Context, before time.Time) (int64, error)
}

// SalesRetentionJob trims old sales log entries so the table does not
// grow without bound. Intended to be scheduled on a worker pool.
type SalesRetentionJob struct {
	pruner SalesPruner
	keep   time.Duration
}

// NewSalesRetentionJob creates a retention job that keeps sales newer
// than the given duration.
func NewSalesRetentionJob(pruner SalesPruner, keep time.Duration) *SalesRetentionJob {
	return &SalesRetentionJob{pruner: pruner, keep: keep}
}

func (j *SalesRetentionJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	cutoff := time.Now().UTC().Add(-j.keep)

	removed, err := j.pruner.PruneSales(ctx, cutoff)
	if err != nil {
		log.Error(LogMsgSalesRetentionFailed, "error", err)
		return err
	}

	if removed > 0 {
		log.Info(LogMsgSalesRetentionCompleted, "rows_removed", removed, "cutoff", cutoff)
	}
	return nil
}
