// Package report assembles projection results into a structured summary,
// renders it for humans, and builds the notification messages.
package report

import (
	"fmt"
	"strings"

	"balmon/internal/core"
	"balmon/internal/notify"
)

// Report is the structured summary of one projection run.
type Report struct {
	AccountName    string
	Window         core.Window
	CurrentBalance core.Money
	Threshold      core.Money
	MinimumBalance core.Money
	MinimumDate    core.Date
	DailyBalances  []core.DailyBalance
	Occurrences    []core.Occurrence
	Breach         bool
	Shortfall      core.Money
}

// Build assembles a report from a projection result. Breach means the
// projected minimum falls below the configured threshold.
func Build(accountName string, current core.Money, res *core.ProjectionResult, window core.Window, threshold core.Money) Report {
	r := Report{
		AccountName:    accountName,
		Window:         window,
		CurrentBalance: current,
		Threshold:      threshold,
		MinimumBalance: res.MinimumBalance,
		MinimumDate:    res.MinimumDate,
		DailyBalances:  res.DailyBalances,
		Occurrences:    res.Occurrences,
	}
	if res.MinimumBalance.LessThan(threshold) {
		r.Breach = true
		r.Shortfall = threshold.Sub(res.MinimumBalance)
	}
	return r
}

// Render produces the plain-text summary written to the log output.
func (r Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", r.AccountName)
	fmt.Fprintf(&b, "Current balance: %s\n", r.CurrentBalance)
	fmt.Fprintf(&b, "Window: %s through %s, threshold %s\n", r.Window.Start, r.Window.End, r.Threshold)

	fmt.Fprintf(&b, "\nScheduled occurrences: %d\n", len(r.Occurrences))
	for _, occ := range r.Occurrences {
		fmt.Fprintf(&b, "  %s  %-40s  %12s\n", occ.Date, occ.Description, occ.Amount)
	}

	fmt.Fprintf(&b, "\nProjected balances:\n")
	for _, day := range r.DailyBalances {
		fmt.Fprintf(&b, "  %s  %12s\n", day.Date, day.Balance)
	}

	fmt.Fprintf(&b, "\nProjected minimum balance: %s on %s\n", r.MinimumBalance, r.MinimumDate)
	if r.Breach {
		fmt.Fprintf(&b, "ALERT: projected balance drops %s below threshold\n", r.Shortfall)
	} else {
		fmt.Fprintf(&b, "Balance stays above %s threshold\n", r.Threshold)
	}
	return b.String()
}

// AlertNotification is the message sent when the projected minimum breaches
// the threshold. A negative minimum escalates to a warning.
func (r Report) AlertNotification() notify.Notification {
	kind := notify.KindInfo
	if r.MinimumBalance.IsNegative() {
		kind = notify.KindWarning
	}
	return notify.Notification{
		Title: "Balance Alert",
		Body: fmt.Sprintf(
			"Your checking account balance is projected to drop to %s by %s. Minimum threshold: %s.",
			r.MinimumBalance, r.MinimumDate.Format("Jan 02, 2006"), r.Threshold,
		),
		Kind: kind,
	}
}

// UpdateNotification is the routine status message sent on the update
// cadence regardless of the threshold.
func (r Report) UpdateNotification() notify.Notification {
	status := "on track"
	kind := notify.KindSuccess
	if r.Breach {
		status = "below threshold"
		kind = notify.KindWarning
	}
	return notify.Notification{
		Title: "Balance Update",
		Body: fmt.Sprintf(
			"Projected minimum: %s on %s (through %s). Threshold: %s, %s.",
			r.MinimumBalance, r.MinimumDate.Format("Jan 02"),
			r.Window.End.Format("Jan 02, 2006"), r.Threshold, status,
		),
		Kind: kind,
	}
}
