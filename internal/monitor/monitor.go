// Package monitor orchestrates one balance check cycle: fetch budget data,
// run the projection, log the report, and dispatch notifications.
package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"balmon/internal/config"
	"balmon/internal/core"
	"balmon/internal/log"
	"balmon/internal/notify"
	"balmon/internal/projection"
	"balmon/internal/report"
	"balmon/internal/ynab"
)

// Monitor runs balance check cycles against one monitored account.
type Monitor struct {
	client  *ynab.Client
	cfg     *config.Config
	alerts  notify.Notifier
	updates notify.Notifier
	logger  *log.Logger

	now func() time.Time
	out io.Writer
}

// New creates a monitor. alerts receives threshold-breach notifications;
// updates receives the routine status messages.
func New(client *ynab.Client, cfg *config.Config, alerts, updates notify.Notifier, logger *log.Logger) *Monitor {
	return &Monitor{
		client:  client,
		cfg:     cfg,
		alerts:  alerts,
		updates: updates,
		logger:  logger,
		now:     time.Now,
		out:     os.Stdout,
	}
}

// RunCheck performs one check cycle. It always evaluates the alert threshold
// and sends an alert on a breach; when sendUpdate is true it also sends a
// routine update notification regardless of the threshold.
func (m *Monitor) RunCheck(ctx context.Context, sendUpdate bool) error {
	today := core.DateOf(m.now())
	window, err := core.NewWindow(today, m.endDate(today))
	if err != nil {
		return err
	}
	m.logger.Info("starting balance check",
		"window_start", window.Start.String(),
		"window_end", window.End.String(),
		"threshold", m.cfg.MinBalance.String())

	var (
		account  ynab.Account
		txns     []ynab.ScheduledTransaction
		accounts []ynab.Account
		groups   []ynab.CategoryGroup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = m.client.Account(gctx, m.cfg.BudgetID, m.cfg.AccountID)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = m.client.ScheduledTransactions(gctx, m.cfg.BudgetID)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = m.client.Accounts(gctx, m.cfg.BudgetID)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = m.client.Categories(gctx, m.cfg.BudgetID)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetch budget data: %w", err)
	}

	cards := ynab.CreditCardAccounts(accounts)
	scheduled, err := ynab.ScheduledForAccount(txns, m.cfg.AccountID, cards)
	if err != nil {
		return err
	}
	obligations := ynab.CreditCardObligations(groups, cards, m.cfg.CCCategories)

	result, err := projection.Compute(projection.Input{
		CurrentBalance: core.Money(account.Balance),
		Scheduled:      scheduled,
		Obligations:    obligations,
		Window:         window,
	})
	if err != nil {
		return err
	}

	rep := report.Build(account.Name, core.Money(account.Balance), result, window, m.cfg.MinBalance)
	fmt.Fprint(m.out, rep.Render())
	m.logger.Info("projection complete",
		"account", account.Name,
		"current_balance", rep.CurrentBalance.String(),
		"minimum_balance", rep.MinimumBalance.String(),
		"minimum_date", rep.MinimumDate.String(),
		"occurrences", len(rep.Occurrences))

	if rep.Breach {
		m.logger.Warn("projected balance breaches threshold",
			"shortfall", rep.Shortfall.String(),
			"minimum_date", rep.MinimumDate.String())
		if err := m.alerts.Notify(ctx, rep.AlertNotification()); err != nil {
			return fmt.Errorf("send alert notification: %w", err)
		}
	}

	if sendUpdate {
		// A failed routine update is logged but does not fail the cycle.
		if err := m.updates.Notify(ctx, rep.UpdateNotification()); err != nil {
			m.logger.Error("send update notification", "error", err)
		}
	}
	return nil
}

// endDate computes the projection end: MonitorDays forward when configured,
// otherwise the end of the current month.
func (m *Monitor) endDate(today core.Date) core.Date {
	if m.cfg.MonitorDays > 0 {
		return today.AddDays(m.cfg.MonitorDays)
	}
	return core.EndOfMonth(today)
}
