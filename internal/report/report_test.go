package report

import (
	"strings"
	"testing"

	"balmon/internal/core"
	"balmon/internal/notify"
)

func sampleResult() *core.ProjectionResult {
	return &core.ProjectionResult{
		MinimumBalance: -250000,
		MinimumDate:    core.NewDate(2026, 2, 10),
		DailyBalances: []core.DailyBalance{
			{Date: core.NewDate(2026, 2, 7), Balance: 1250000},
			{Date: core.NewDate(2026, 2, 10), Balance: -250000},
			{Date: core.NewDate(2026, 2, 14), Balance: 2950000},
		},
		Occurrences: []core.Occurrence{
			{Date: core.NewDate(2026, 2, 10), Amount: -1500000, Description: "Rent (monthly)"},
		},
	}
}

func sampleWindow() core.Window {
	return core.Window{Start: core.NewDate(2026, 2, 7), End: core.NewDate(2026, 2, 28)}
}

func TestBuild(t *testing.T) {
	t.Run("breach below threshold", func(t *testing.T) {
		r := Build("Checking", 2450000, sampleResult(), sampleWindow(), 0)
		if !r.Breach {
			t.Error("minimum -250.00 under threshold 0 must breach")
		}
		if r.Shortfall != 250000 {
			t.Errorf("shortfall = %d, want 250000", r.Shortfall)
		}
	})

	t.Run("no breach at or above threshold", func(t *testing.T) {
		res := sampleResult()
		res.MinimumBalance = 500000
		r := Build("Checking", 2450000, res, sampleWindow(), 500000)
		if r.Breach {
			t.Error("minimum equal to threshold must not breach")
		}
		if r.Shortfall != 0 {
			t.Errorf("shortfall = %d, want 0", r.Shortfall)
		}
	})
}

func TestRender(t *testing.T) {
	r := Build("Checking", 2450000, sampleResult(), sampleWindow(), 0)
	out := r.Render()

	for _, want := range []string{
		"Account: Checking",
		"Current balance: $2,450.00",
		"Projected minimum balance: -$250.00 on 2026-02-10",
		"Rent (monthly)",
		"ALERT: projected balance drops $250.00 below threshold",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}
}

func TestAlertNotification(t *testing.T) {
	r := Build("Checking", 2450000, sampleResult(), sampleWindow(), 0)
	n := r.AlertNotification()
	if n.Kind != notify.KindWarning {
		t.Errorf("kind = %q, want warning for a negative minimum", n.Kind)
	}
	if !strings.Contains(n.Body, "-$250.00") || !strings.Contains(n.Body, "Feb 10, 2026") {
		t.Errorf("body = %q", n.Body)
	}

	res := sampleResult()
	res.MinimumBalance = 100000
	n = Build("Checking", 2450000, res, sampleWindow(), 200000).AlertNotification()
	if n.Kind != notify.KindInfo {
		t.Errorf("kind = %q, want info for a positive minimum", n.Kind)
	}
}

func TestUpdateNotification(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		n := Build("Checking", 2450000, sampleResult(), sampleWindow(), 0).UpdateNotification()
		if n.Kind != notify.KindWarning || !strings.Contains(n.Body, "below threshold") {
			t.Errorf("notification = %+v", n)
		}
	})

	t.Run("on track", func(t *testing.T) {
		res := sampleResult()
		res.MinimumBalance = 500000
		n := Build("Checking", 2450000, res, sampleWindow(), 0).UpdateNotification()
		if n.Kind != notify.KindSuccess || !strings.Contains(n.Body, "on track") {
			t.Errorf("notification = %+v", n)
		}
	})
}
