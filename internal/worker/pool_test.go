package worker

import (
	"context"
	"testing"
	"time"
)

type sleepJob struct {
	id    int
	delay time.Duration
}

type sleepResult struct {
	id  int
	err error
}

func (r *sleepResult) GetError() error { return r.err }

func (j *sleepJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &sleepResult{id: j.id, err: ctx.Err()}
	case <-time.After(j.delay):
		return &sleepResult{id: j.id}
	}
}

func TestPoolRunsAllJobs(t *testing.T) {
	p := NewPool(4)
	p.Start()
	go func() {
		for i := 0; i < 12; i++ {
			p.Submit(&sleepJob{id: i})
		}
		p.Close()
	}()
	results := p.Wait()

	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	seen := make(map[int]bool)
	for _, r := range results {
		res := r.(*sleepResult)
		if res.err != nil {
			t.Errorf("job %d failed: %v", res.id, res.err)
		}
		seen[res.id] = true
	}
	if len(seen) != 12 {
		t.Errorf("duplicate or missing jobs: %v", seen)
	}
}

// Many more jobs than the channel buffers hold. Submission overlapping the
// drain must still complete every job.
func TestPoolQueueLargerThanBuffers(t *testing.T) {
	p := NewPool(2)
	p.Start()
	go func() {
		for i := 0; i < 50; i++ {
			p.Submit(&sleepJob{id: i, delay: time.Millisecond})
		}
		p.Close()
	}()
	results := p.Wait()
	if len(results) != 50 {
		t.Fatalf("got %d results, want 50", len(results))
	}
}

func TestPoolZeroWorkersDefaultsToOne(t *testing.T) {
	p := NewPool(0)
	p.Start()
	p.Submit(&sleepJob{id: 1})
	p.Close()
	if results := p.Wait(); len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestPoolShutdown(t *testing.T) {
	p := NewPool(1)
	p.Start()
	p.Submit(&sleepJob{id: 1, delay: 50 * time.Millisecond})
	p.Shutdown()
	// Shutdown must return promptly and not hang waiting for queued work.
}
