package ynab

import (
	"fmt"

	"balmon/internal/core"
)

// ccPaymentGroupName is the category group the service reserves for credit
// card payment categories; category names inside it mirror the card account
// names.
const ccPaymentGroupName = "Credit Card Payments"

var frequencies = map[string]core.Frequency{
	"never":           core.Never,
	"daily":           core.Daily,
	"weekly":          core.Weekly,
	"everyOtherWeek":  core.EveryOtherWeek,
	"every4Weeks":     core.Every4Weeks,
	"monthly":         core.Monthly,
	"everyOtherMonth": core.EveryOtherMonth,
	"every3Months":    core.Every3Months,
	"every4Months":    core.Every4Months,
	"twiceAMonth":     core.TwiceAMonth,
	"twiceAYear":      core.TwiceAYear,
	"yearly":          core.Yearly,
	"everyOtherYear":  core.EveryOtherYear,
}

// TranslateFrequency maps the service's frequency vocabulary onto the closed
// domain set. An unrecognized value is a configuration error, never silently
// treated as one-time.
func TranslateFrequency(s string) (core.Frequency, error) {
	if s == "" {
		return core.Never, nil
	}
	f, ok := frequencies[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownFrequency, s)
	}
	return f, nil
}

// CreditCardAccounts returns the open, live credit card accounts keyed by
// name. Category names in the payments group are matched against these.
func CreditCardAccounts(accounts []Account) map[string]Account {
	cards := make(map[string]Account)
	for _, a := range accounts {
		if a.Type == "creditCard" && !a.Deleted && !a.Closed {
			cards[a.Name] = a
		}
	}
	return cards
}

// ScheduledForAccount converts the budget's scheduled transactions into
// domain scheduled transactions for one monitored account. Deleted entries
// and entries on other accounts are skipped; transfers into one of the given
// credit card accounts are tagged for obligation reconciliation.
func ScheduledForAccount(txns []ScheduledTransaction, accountID string, cards map[string]Account) ([]core.ScheduledTransaction, error) {
	cardIDs := make(map[string]bool, len(cards))
	for _, a := range cards {
		cardIDs[a.ID] = true
	}

	var out []core.ScheduledTransaction
	for _, txn := range txns {
		if txn.Deleted || txn.AccountID != accountID {
			continue
		}

		anchor := txn.DateNext
		if anchor == "" {
			anchor = txn.DateFirst
		}
		next, err := core.ParseDate(anchor)
		if err != nil {
			return nil, fmt.Errorf("%w: scheduled transaction %s: %q", core.ErrInvalidAnchor, txn.ID, anchor)
		}
		freq, err := TranslateFrequency(txn.Frequency)
		if err != nil {
			return nil, fmt.Errorf("scheduled transaction %s: %w", txn.ID, err)
		}

		payee := txn.PayeeName
		if payee == "" {
			payee = "Unknown"
		}
		out = append(out, core.ScheduledTransaction{
			ID:                   txn.ID,
			PayeeName:            payee,
			Amount:               core.Money(txn.Amount),
			Rule:                 core.RecurrenceRule{Next: next, Every: freq},
			TransferAccountID:    txn.TransferAccountID,
			TransferIsCreditCard: cardIDs[txn.TransferAccountID],
		})
	}
	return out, nil
}

// CreditCardObligations walks the credit card payments category group and
// returns the positive available balances as obligations, mapped to their
// card accounts. filter optionally restricts to specific category ids or
// names; empty means all.
func CreditCardObligations(groups []CategoryGroup, cards map[string]Account, filter []string) []core.CreditCardObligation {
	allowed := make(map[string]bool, len(filter))
	for _, f := range filter {
		allowed[f] = true
	}

	var out []core.CreditCardObligation
	for _, group := range groups {
		if group.Name != ccPaymentGroupName || group.Deleted {
			continue
		}
		for _, cat := range group.Categories {
			if cat.Deleted || cat.Hidden {
				continue
			}
			if len(allowed) > 0 && !allowed[cat.ID] && !allowed[cat.Name] {
				continue
			}
			card, ok := cards[cat.Name]
			if !ok || cat.Balance <= 0 {
				continue
			}
			out = append(out, core.CreditCardObligation{
				AccountID: card.ID,
				Name:      cat.Name,
				Balance:   core.Money(cat.Balance),
			})
		}
	}
	return out
}
