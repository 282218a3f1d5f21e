package projection

import "balmon/internal/core"

// ReconcileResult splits credit-card obligations into what the schedule
// already covers and what remains unscheduled.
type ReconcileResult struct {
	// Remaining holds obligations (or their uncovered remainders) with no
	// scheduled transfer paying them inside the window. Balances are always
	// positive; fully covered obligations are dropped.
	Remaining []core.CreditCardObligation

	// AccountedViaSchedule is the total obligation amount already represented
	// by scheduled transfers, so it is not counted twice.
	AccountedViaSchedule core.Money
}

// Reconcile prevents double-counting between credit-card obligations and the
// scheduled transfers that pay them. Transfers to the same card are summed
// first, then the obligation is reduced to a floor of zero: a transfer larger
// than the obligation never creates a credit. Matching is by exact account
// identity.
func Reconcile(obligations []core.CreditCardObligation, occurrences []core.Occurrence) ReconcileResult {
	scheduled := make(map[string]core.Money)
	for _, occ := range occurrences {
		if occ.TransferIsCreditCard && occ.TransferAccountID != "" {
			scheduled[occ.TransferAccountID] = scheduled[occ.TransferAccountID].Add(occ.Amount.Abs())
		}
	}

	var res ReconcileResult
	for _, ob := range obligations {
		covered := scheduled[ob.AccountID]
		if ob.Balance.LessThan(covered) {
			covered = ob.Balance
		}
		res.AccountedViaSchedule = res.AccountedViaSchedule.Add(covered)
		if remainder := ob.Balance.Sub(covered); !remainder.IsZero() {
			res.Remaining = append(res.Remaining, core.CreditCardObligation{
				AccountID: ob.AccountID,
				Name:      ob.Name,
				Balance:   remainder,
			})
		}
	}
	return res
}
