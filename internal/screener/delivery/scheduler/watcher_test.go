package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/strategy"
	"idx-scalping-sniper/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStrategy struct {
	jobType string
	err     error
	block   chan struct{}
	mu      sync.Mutex
	calls   int
	ctxDone bool
}

func (s *stubStrategy) GetType() string { return s.jobType }

func (s *stubStrategy) Execute(ctx context.Context, job config.WatcherJob) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	_, hasDeadline := ctx.Deadline()
	s.mu.Lock()
	s.ctxDone = hasDeadline
	s.mu.Unlock()
	return `{"ok":true}`, s.err
}

func (s *stubStrategy) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) SendMessage(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
	return nil
}

func newTestWatcher(jobs []config.WatcherJob, notifier *recordingNotifier, strategies ...strategy.JobExecutionStrategy) *Watcher {
	cfg := config.Default()
	cfg.Watcher.Jobs = jobs
	cfg.Watcher.Timeout = time.Minute
	return NewWatcher(cfg, logger.NewNop(), notifier, strategies)
}

func TestRunJobSuccess(t *testing.T) {
	s := &stubStrategy{jobType: "screening"}
	notifier := &recordingNotifier{}
	w := newTestWatcher(nil, notifier, s)

	w.RunJob(context.Background(), config.WatcherJob{Type: "screening"})
	assert.Equal(t, 1, s.Calls())
	assert.True(t, s.ctxDone)
	assert.Empty(t, notifier.messages)
}

func TestRunJobFailureSendsAlert(t *testing.T) {
	s := &stubStrategy{jobType: "warrant", err: errors.New("upstream down")}
	notifier := &recordingNotifier{}
	w := newTestWatcher(nil, notifier, s)

	w.RunJob(context.Background(), config.WatcherJob{Type: "warrant"})
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "ERROR ALERT")
	assert.Contains(t, notifier.messages[0], "upstream down")
}

func TestRunJobSkipsOverlappingRun(t *testing.T) {
	s := &stubStrategy{jobType: "screening", block: make(chan struct{})}
	w := newTestWatcher(nil, &recordingNotifier{}, s)

	done := make(chan struct{})
	go func() {
		w.RunJob(context.Background(), config.WatcherJob{Type: "screening"})
		close(done)
	}()
	require.Eventually(t, func() bool { return s.Calls() == 1 }, time.Second, 5*time.Millisecond)

	w.RunJob(context.Background(), config.WatcherJob{Type: "screening"})
	assert.Equal(t, 1, s.Calls())

	close(s.block)
	<-done
}

func TestStartRejectsBadJobs(t *testing.T) {
	s := &stubStrategy{jobType: "screening"}

	w := newTestWatcher([]config.WatcherJob{{Type: "news", Cron: "* * * * *"}}, &recordingNotifier{}, s)
	assert.ErrorContains(t, w.Start(context.Background()), "unknown watcher job type")

	w = newTestWatcher([]config.WatcherJob{{Type: "screening", Cron: "every minute"}}, &recordingNotifier{}, s)
	assert.ErrorContains(t, w.Start(context.Background()), "invalid cron")
}

func TestStartAndStop(t *testing.T) {
	s := &stubStrategy{jobType: "screening"}
	w := newTestWatcher([]config.WatcherJob{{Type: "screening", Cron: "15 9 * * 1-5"}}, &recordingNotifier{}, s)

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	assert.Equal(t, 0, s.Calls())
}
