package projection

import (
	"fmt"
	"sort"

	"balmon/internal/core"
)

// Input is everything one projection run consumes. Scheduled transactions
// that transfer money to a credit card are tagged via their
// TransferAccountID/TransferIsCreditCard fields and take part in obligation
// reconciliation.
type Input struct {
	CurrentBalance core.Money
	Scheduled      []core.ScheduledTransaction
	Obligations    []core.CreditCardObligation
	Window         core.Window
}

// Compute is the engine's single entrypoint. It expands every scheduled
// transaction into dated occurrences, reconciles credit-card obligations
// against scheduled transfers, applies any unscheduled remainder as an
// outflow on the window start (money not yet scheduled to leave is assumed to
// leave immediately), and walks the window for the minimum balance.
// Deterministic: identical inputs produce identical results.
func Compute(in Input) (*core.ProjectionResult, error) {
	if err := in.Window.Validate(); err != nil {
		return nil, err
	}

	var occurrences []core.Occurrence
	for _, txn := range in.Scheduled {
		dates, err := Expand(txn.Rule, in.Window)
		if err != nil {
			return nil, fmt.Errorf("scheduled transaction %q: %w", txn.PayeeName, err)
		}
		desc := txn.PayeeName
		if txn.Rule.Every != core.Never {
			desc = fmt.Sprintf("%s (%s)", txn.PayeeName, txn.Rule.Every)
		}
		for _, d := range dates {
			occurrences = append(occurrences, core.Occurrence{
				Date:                 d,
				Amount:               txn.Amount,
				Description:          desc,
				TransferAccountID:    txn.TransferAccountID,
				TransferIsCreditCard: txn.TransferIsCreditCard,
			})
		}
	}

	reconciled := Reconcile(in.Obligations, occurrences)
	for _, ob := range reconciled.Remaining {
		occurrences = append(occurrences, core.Occurrence{
			Date:        in.Window.Start,
			Amount:      ob.Balance.Neg(),
			Description: ob.Name + " (unscheduled credit card payment)",
		})
	}

	return Project(in.CurrentBalance, occurrences, in.Window)
}

// Project walks the window and produces the running and minimum balances.
// Only dates touched by an occurrence appear in the walk, plus the window
// start unconditionally so a balance is reported even with no occurrences.
// Amounts landing on the same date are summed; the minimum tracks end-of-day
// balances, and on a tie the earlier date wins.
func Project(starting core.Money, occurrences []core.Occurrence, window core.Window) (*core.ProjectionResult, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	ordered := make([]core.Occurrence, 0, len(occurrences))
	for _, occ := range occurrences {
		if window.Contains(occ.Date) {
			ordered = append(ordered, occ)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	amountByDate := map[core.Date]core.Money{window.Start: 0}
	dates := []core.Date{window.Start}
	for _, occ := range ordered {
		if _, seen := amountByDate[occ.Date]; !seen {
			dates = append(dates, occ.Date)
		}
		amountByDate[occ.Date] = amountByDate[occ.Date].Add(occ.Amount)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	running := starting
	daily := make([]core.DailyBalance, 0, len(dates))
	var minBalance core.Money
	var minDate core.Date
	for i, d := range dates {
		running = running.Add(amountByDate[d])
		daily = append(daily, core.DailyBalance{Date: d, Balance: running})
		if i == 0 || running.LessThan(minBalance) {
			minBalance = running
			minDate = d
		}
	}

	return &core.ProjectionResult{
		MinimumBalance: minBalance,
		MinimumDate:    minDate,
		DailyBalances:  daily,
		Occurrences:    ordered,
	}, nil
}
