package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type jobKind string

const (
	jobKindLoad jobKind = "load"
	jobKindCopy jobKind = "copy"
)

type jobStatus int

const (
	jobRunning jobStatus = iota
	jobSucceeded
	jobFailed
)

func (s jobStatus) String() string {
	switch s {
	case jobRunning:
		return "running"
	case jobSucceeded:
		return "succeeded"
	case jobFailed:
		return "failed"
	default:
		return fmt.Sprintf("jobStatus(%d)", int(s))
	}
}

type job struct {
	ID      string
	Kind    jobKind
	Status  jobStatus
	Started time.Time
	Took    time.Duration
	Err     error
}

// jobStartedMsg arrives before the runner is invoked so the status bar can
// show the work in flight.
type jobStartedMsg struct {
	Job job
}

// jobDoneMsg carries the runner's payload. The payload is delivered even
// when the job failed; runners put their error in it too.
type jobDoneMsg struct {
	Job     job
	Payload tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus runs blocking work off the update loop. Jobs share the program's
// context and are skipped once it is cancelled.
type jobBus struct {
	ctx    context.Context
	logger zerolog.Logger
	issued int
}

func newJobBus(ctx context.Context, logger zerolog.Logger) *jobBus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &jobBus{ctx: ctx, logger: logger}
}

// nextID is only called from Update, which never runs concurrently.
func (b *jobBus) nextID(kind jobKind) string {
	b.issued++
	return fmt.Sprintf("%s-%d", kind, b.issued)
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	j := job{ID: b.nextID(kind), Kind: kind, Status: jobRunning, Started: time.Now()}
	return tea.Sequence(
		func() tea.Msg { return jobStartedMsg{Job: j} },
		func() tea.Msg { return b.run(j, runner) },
	)
}

func (b *jobBus) run(j job, runner jobRunner) jobDoneMsg {
	var payload tea.Msg
	err := b.ctx.Err()
	if err == nil {
		payload, err = runner(b.ctx)
	}

	j.Took = time.Since(j.Started)
	j.Status = jobSucceeded
	event := b.logger.Debug()
	if err != nil {
		j.Status = jobFailed
		j.Err = err
		event = b.logger.Warn().Err(err)
	}
	event.Str("job", j.ID).Stringer("status", j.Status).Dur("took", j.Took).Msg("job finished")

	return jobDoneMsg{Job: j, Payload: payload}
}
