package worker

import (
	"sync"
	"time"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/metrics"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// Sweeper is the subset of the session store the janitor needs. The Redis
// store expires keys on its own, so only the in-memory store implements it.
type Sweeper interface {
	SweepExpired(maxAge time.Duration) int
}

var (
	sweeper          Sweeper
	stopJanitorChan  chan bool
	janitorWaitGroup *sync.WaitGroup
	logger           *logger_i.Logger
)

// InitJanitor periodically evicts sessions that have sat untouched past
// their max age. A nil sweeper disables the janitor entirely.
func InitJanitor(target Sweeper, stopChan chan bool, waitGroup *sync.WaitGroup) {
	logger = logger_i.NewLogger("Janitor")
	if target == nil {
		logger.Info("No sweepable store, janitor disabled")
		return
	}
	sweeper = target
	stopJanitorChan = stopChan
	janitorWaitGroup = waitGroup

	janitorWaitGroup.Add(1)
	go run()
	logger.Info("Janitor started", "interval", config.SessionSweepInterval)
}

func run() {
	defer janitorWaitGroup.Done()

	ticker := time.NewTicker(config.SessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := sweeper.SweepExpired(config.SessionMaxAge)
			for i := 0; i < removed; i++ {
				metrics.DecrementActiveSessionCount() //metrics
			}
		case <-stopJanitorChan:
			logger.Info("Janitor stopped")
			return
		}
	}
}
