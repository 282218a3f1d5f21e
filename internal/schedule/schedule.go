// Package schedule parses the monitor's schedule strings and runs the
// check and update jobs on their cadences.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Kind distinguishes the supported schedule shapes.
type Kind int

const (
	// KindNone means no schedule: run once and exit.
	KindNone Kind = iota
	// KindInterval runs every fixed duration, firing once immediately on start.
	KindInterval
	// KindDaily runs once a day at a fixed time, waiting for its first tick.
	KindDaily
)

// Spec is a parsed schedule.
type Spec struct {
	Kind  Kind
	Every time.Duration // KindInterval
	Hour  int           // KindDaily
	Min   int           // KindDaily
}

// Parse reads a schedule string: "HH:MM" for daily at that time, or a
// positive duration such as "6h" or "90m" for an interval. Empty means run
// once.
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, nil
	}

	if strings.Contains(s, ":") {
		hourStr, minStr, _ := strings.Cut(s, ":")
		hour, err1 := strconv.Atoi(hourStr)
		min, err2 := strconv.Atoi(minStr)
		if err1 != nil || err2 != nil || hour < 0 || hour > 23 || min < 0 || min > 59 {
			return Spec{}, fmt.Errorf("invalid daily schedule %q: want HH:MM", s)
		}
		return Spec{Kind: KindDaily, Hour: hour, Min: min}, nil
	}

	every, err := time.ParseDuration(s)
	if err != nil || every <= 0 {
		return Spec{}, fmt.Errorf("invalid schedule %q: want HH:MM or a positive duration like 6h", s)
	}
	return Spec{Kind: KindInterval, Every: every}, nil
}

// IsZero reports whether the spec means run-once.
func (s Spec) IsZero() bool {
	return s.Kind == KindNone
}

// CronSpec renders the spec in cron syntax.
func (s Spec) CronSpec() string {
	switch s.Kind {
	case KindInterval:
		return "@every " + s.Every.String()
	case KindDaily:
		return fmt.Sprintf("%d %d * * *", s.Min, s.Hour)
	default:
		return ""
	}
}

func (s Spec) String() string {
	switch s.Kind {
	case KindInterval:
		return "every " + s.Every.String()
	case KindDaily:
		return fmt.Sprintf("daily at %02d:%02d", s.Hour, s.Min)
	default:
		return "once"
	}
}

// Runner drives scheduled jobs through a cron runtime. Interval jobs also
// fire once immediately when the runner starts.
type Runner struct {
	cron      *cron.Cron
	immediate []func()
}

func NewRunner() *Runner {
	return &Runner{cron: cron.New()}
}

// Add registers a job on the given schedule. A zero spec is ignored.
func (r *Runner) Add(spec Spec, job func()) error {
	if spec.IsZero() {
		return nil
	}
	if _, err := r.cron.AddFunc(spec.CronSpec(), job); err != nil {
		return fmt.Errorf("register schedule %q: %w", spec, err)
	}
	if spec.Kind == KindInterval {
		r.immediate = append(r.immediate, job)
	}
	return nil
}

// Start runs the immediate jobs, then begins the cron loop. Non-blocking.
func (r *Runner) Start() {
	for _, job := range r.immediate {
		job()
	}
	r.cron.Start()
}

// Stop halts scheduling and waits for any running job to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}
