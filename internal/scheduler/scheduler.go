package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"MetalWatch/internal/collector"
	"MetalWatch/internal/model"
	"MetalWatch/internal/notifier"
	"MetalWatch/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic refresh and report tasks and keeps the most
// recent snapshot for the HTTP layer. The strategy core stays stateless;
// all cross-cycle state lives here.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier // nil when Telegram is not configured
	Ctx       context.Context

	mu        sync.Mutex
	latest    *model.SignalSnapshot
	lastLevel model.SignalLevel
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Ctx:       ctx,
	}
}

// RegisterAll registers the refresh and report tasks.
func (s *Scheduler) RegisterAll(refreshCron, reportCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// Latest returns the most recent snapshot, or nil before the first
// successful refresh.
func (s *Scheduler) Latest() *model.SignalSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// RunRefreshNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh")
	data := s.Collector.Collect()

	snap, err := strategy.Evaluate(data)
	if err != nil {
		log.Printf("[ERROR] evaluate: %v", err)
		s.trySend(fmt.Sprintf("❌ signal refresh failed: %v", err))
		return
	}

	s.mu.Lock()
	prevLevel := s.lastLevel
	s.latest = snap
	s.lastLevel = snap.Composite.Level
	s.mu.Unlock()

	log.Printf("[INFO] refresh done: %d records, composite %s (%.2f)",
		len(snap.Records), snap.Composite.Level, snap.Composite.Score)

	if prevLevel != "" && prevLevel != snap.Composite.Level {
		s.trySend(notifier.FormatCompositeAlert(prevLevel, snap))
	}
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running report")
	snap := s.Latest()
	if snap == nil {
		s.refreshTask()
		snap = s.Latest()
	}
	if snap == nil {
		return
	}
	s.trySend(notifier.FormatSignalReport(snap))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/signals":
		snap := s.Latest()
		if snap == nil {
			return "no signals yet, try /refresh"
		}
		return notifier.FormatSignalReport(snap)
	case "/macro":
		snap := s.Latest()
		if snap == nil {
			return "no signals yet, try /refresh"
		}
		return notifier.FormatMacro(snap)
	case "/refresh":
		s.refreshTask()
		snap := s.Latest()
		if snap == nil {
			return "refresh failed, see logs"
		}
		return notifier.FormatSignalReport(snap)
	default:
		return "commands:\n• /signals\n• /macro\n• /refresh"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
