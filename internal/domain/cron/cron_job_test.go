package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type countingDrop struct {
	mutex sync.Mutex
	runs  int
	done  chan struct{}
	err   error
}

func (d *countingDrop) Run(ctx context.Context) (*model.DropSummary, error) {
	d.mutex.Lock()
	d.runs++
	runs := d.runs
	d.mutex.Unlock()

	if runs == 2 {
		close(d.done)
	}

	if d.err != nil {
		return nil, d.err
	}

	return &model.DropSummary{RunID: "run"}, nil
}

func Test_CronJobManager_RunsAndReschedules(t *testing.T) {
	ctx := testutil.MockContext()
	drop := &countingDrop{done: make(chan struct{}), err: errors.New("quest service down")}

	manager := NewCronJobManager()
	manager.Register(NewDropCronJob(drop, 10*time.Millisecond))

	stopped := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(stopped)
	}()

	select {
	case <-drop.done:
	case <-time.After(5 * time.Second):
		t.Fatal("drop job was not rescheduled")
	}

	manager.Cancel(ctx)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("manager did not stop")
	}
}

func Test_CronJobManager_CancelBeforeStart(t *testing.T) {
	ctx := testutil.MockContext()
	drop := &countingDrop{done: make(chan struct{})}

	manager := NewCronJobManager()
	job := NewDropCronJob(drop, time.Hour)
	manager.Register(job, job)
	manager.Cancel(ctx)

	stopped := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("manager did not stop")
	}

	drop.mutex.Lock()
	defer drop.mutex.Unlock()
	require.Zero(t, drop.runs)
}

type stubReview struct {
	calls int
}

func (r *stubReview) Run(ctx context.Context) (*model.ReviewSummary, error) {
	r.calls++
	return &model.ReviewSummary{}, nil
}

func Test_ReviewCronJob(t *testing.T) {
	ctx := testutil.MockContext()
	review := &stubReview{}

	job := NewReviewCronJob(review, time.Minute)
	require.True(t, job.RunNow())
	require.WithinDuration(t, time.Now().Add(time.Minute), job.Next(), time.Second)

	job.Do(ctx)
	require.Equal(t, 1, review.calls)
}
