package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/atendemei/painel/internal/resetcode"
)

// ResetSweepJob purges reset codes that expired longer than the grace
// period ago. Within the grace window a stale code still reports "expired"
// on verification; after it the entry is gone and reads as invalid, which
// only changes an error message.
type ResetSweepJob struct {
	codes *resetcode.Store
	grace time.Duration
}

func NewResetSweepJob(codes *resetcode.Store, grace time.Duration) *ResetSweepJob {
	if grace <= 0 {
		grace = time.Hour
	}
	return &ResetSweepJob{codes: codes, grace: grace}
}

func (j *ResetSweepJob) Name() string {
	return "reset_code_sweep"
}

func (j *ResetSweepJob) Run(ctx context.Context) error {
	if j.codes == nil {
		return nil
	}
	removed := j.codes.PurgeExpired(time.Now().Add(-j.grace))
	if removed > 0 {
		logutil.GetLogger(ctx).Info("purged stale reset codes", zap.Int("count", removed))
	}
	return nil
}
