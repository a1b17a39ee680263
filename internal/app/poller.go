package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vrcwatch/internal/discord"
	"vrcwatch/internal/event"
	"vrcwatch/internal/journal"
	"vrcwatch/internal/state"
	"vrcwatch/internal/watch"
)

const (
	defaultPollInterval = 250 * time.Millisecond
	notifyTimeout       = 5 * time.Second
)

// Poller drives the tail-match-persist-notify cycle. One goroutine owns the
// session, the journal, and the notifier; the UI only ever sees the store.
type Poller struct {
	session  *watch.Session
	rules    *event.Ruleset
	journal  *journal.Writer
	notifier discord.Notifier
	store    *state.Store
	logger   *zap.Logger
	now      func() time.Time
}

// NewPoller wires the poll loop dependencies. notifier may be nil.
func NewPoller(session *watch.Session, rules *event.Ruleset, writer *journal.Writer, notifier discord.Notifier, store *state.Store, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		session:  session,
		rules:    rules,
		journal:  writer,
		notifier: notifier,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the poll goroutine. It returns immediately; the loop runs
// until ctx is cancelled. wake may be nil; when present it lets filesystem
// events trigger a cycle ahead of the ticker.
func (p *Poller) Start(ctx context.Context, interval time.Duration, wake <-chan struct{}) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			p.runOnce(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case <-wake:
			}
		}
	}()
}

// runOnce performs a single poll cycle. Every failure inside a cycle is
// recoverable: it is recorded for display and the next cycle tries again.
func (p *Poller) runOnce(ctx context.Context) {
	lines, err := p.session.Poll()
	if err != nil {
		p.store.RecordError(err)
		p.logger.Warn("tail poll failed", zap.Error(err))
		return
	}
	p.store.SetTail(p.session.Path(), p.session.Offset(), p.session.Attached())

	for _, line := range lines {
		rule, ok := p.rules.Match(line)
		if !ok {
			continue
		}
		evt := event.Event{
			Time:    p.now(),
			Line:    line,
			Keyword: rule.Keyword,
			Color:   rule.Color,
		}

		if err := p.journal.Append(evt); err != nil {
			p.store.RecordError(err)
			p.logger.Warn("journal append failed", zap.Error(err), zap.String("line", line))
		}

		p.store.AddEvent(evt)

		if p.notifier != nil {
			sendCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
			err := p.notifier.Send(sendCtx, evt)
			cancel()
			if err != nil {
				p.store.NoteNotifyFailure()
				p.logger.Warn("webhook send failed", zap.Error(err), zap.String("keyword", evt.Keyword))
			}
		}
	}
}
