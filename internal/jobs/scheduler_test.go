package jobs

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/pkg/logger"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 3
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(logger.New("error"), Job{Name: "broken", Schedule: "whenever", Run: func() {}})
	if err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the job, got %v", err)
	}
}

func TestSweepJob(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")
	sweeper := &countingSweeper{}

	job := SweepJob(log, "cart-sweep", "@every 1h", sweeper)
	job.Run()

	if sweeper.calls.Load() != 1 {
		t.Errorf("expected one sweep, got %d", sweeper.calls.Load())
	}
	if !strings.Contains(buf.String(), `"removed":3`) {
		t.Errorf("expected the removed count to be logged, got %q", buf.String())
	}
}

func TestScheduler_RunsJobs(t *testing.T) {
	sweeper := &countingSweeper{}
	log := logger.New("error")

	s, err := NewScheduler(log, SweepJob(log, "cart-sweep", "@every 1s", sweeper))
	if err != nil {
		t.Fatalf("NewScheduler() unexpected error = %v", err)
	}
	s.Start()

	deadline := time.Now().Add(3 * time.Second)
	for sweeper.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	if sweeper.calls.Load() == 0 {
		t.Error("expected the sweep job to run at least once")
	}
}
