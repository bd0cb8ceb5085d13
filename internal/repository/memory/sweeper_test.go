package memory

import (
	"testing"
	"time"
)

type silentLogger struct{}

func (silentLogger) Debug(string, string, map[string]interface{}) {}
func (silentLogger) Info(string, string, map[string]interface{})  {}
func (silentLogger) Warn(string, string, map[string]interface{})  {}
func (silentLogger) Error(string, string, map[string]interface{}) {}
func (silentLogger) Sync() error                                  { return nil }

func TestSweeperRemovesOrphansOnInterval(t *testing.T) {
	sessions := NewSessionRepository(time.Hour)
	charts := NewChartRepository(time.Hour)

	liveSession := sessions.Create("text", nil)
	kept := charts.Create(map[string]interface{}{"k": 1}, liveSession)
	orphan := charts.Create(map[string]interface{}{"k": 2}, NewID())

	sweeper := NewSweeper(sessions, charts, 10*time.Millisecond, silentLogger{})
	sweeper.Start()
	defer sweeper.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, found := charts.Get(orphan); !found {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("orphaned chart not swept within deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, found := charts.Get(kept); !found {
		t.Error("chart with live session was swept")
	}
}

func TestSweeperStopReturns(t *testing.T) {
	sweeper := NewSweeper(NewSessionRepository(time.Hour), NewChartRepository(time.Hour), time.Hour, silentLogger{})
	sweeper.Start()

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
