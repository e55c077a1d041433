package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type jobKind string

type jobStatus string

const jobKindRewrite jobKind = "rewrite"

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

// jobSnapshot describes one job at a point in its life. Subject is what the
// job works on, e.g. the trimmed topic for a rewrite.
type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Subject     string
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

type jobBus struct {
	counter int64
	logger  *zap.Logger
	now     func() time.Time
}

func newJobBus(logger *zap.Logger) *jobBus {
	return &jobBus{logger: logger, now: time.Now}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Start returns the job id and a command that announces the job, runs it,
// and delivers the result wrapped in a jobResultEnvelope.
func (b *jobBus) Start(kind jobKind, subject string, runner jobRunner) (string, tea.Cmd) {
	id := b.nextID(kind)
	started := b.now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Subject: subject, Status: jobStatusRunning, StartedAt: started}
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: startSnapshot}
	}

	runCmd := func() tea.Msg {
		payload, err := runner(context.Background())
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			Subject:     subject,
			StartedAt:   started,
			CompletedAt: b.now(),
		}
		snapshot.Status = jobStatusSucceeded
		if err != nil {
			snapshot.Status = jobStatusFailed
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		b.logger.Debug("job finished",
			zap.String("job", id),
			zap.String("status", string(snapshot.Status)),
			zap.Duration("duration", snapshot.Duration),
		)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}

	return id, tea.Sequence(startCmd, runCmd)
}
