package memory

import (
	"time"

	"ai-chartgen-be/internal/pkg/logger"
)

// Sweeper runs the periodic orphan-cleanup pass: charts whose owning session
// has expired are removed regardless of their own age. Age-based eviction of
// all three namespaces is handled by each cache's janitor.
type Sweeper struct {
	sessions *SessionRepository
	charts   *ChartRepository
	interval time.Duration
	logger   logger.ILogger
	stop     chan struct{}
	done     chan struct{}
}

func NewSweeper(
	sessions *SessionRepository,
	charts *ChartRepository,
	interval time.Duration,
	log logger.ILogger,
) *Sweeper {
	return &Sweeper{
		sessions: sessions,
		charts:   charts,
		interval: interval,
		logger:   log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. Safe to run concurrently with any number of
// in-flight reads/writes: the sweep deletes whole records, never partially
// mutates one.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) sweep() {
	removed := s.charts.DeleteOrphans(s.sessions.Has)
	if removed > 0 {
		s.logger.Info("sweeper", "Removed orphaned charts", map[string]interface{}{
			"count": removed,
		})
	}
}
