package projection

import (
	"testing"

	"balmon/internal/core"
)

func ccTransfer(date core.Date, amount core.Money, accountID string) core.Occurrence {
	return core.Occurrence{
		Date:                 date,
		Amount:               amount,
		Description:          "Transfer : " + accountID,
		TransferAccountID:    accountID,
		TransferIsCreditCard: true,
	}
}

func TestReconcile(t *testing.T) {
	feb10 := core.NewDate(2026, 2, 10)
	feb20 := core.NewDate(2026, 2, 20)

	t.Run("no transfers leaves obligations untouched", func(t *testing.T) {
		obligations := []core.CreditCardObligation{
			{AccountID: "cc-chase", Name: "Chase", Balance: 800000},
			{AccountID: "cc-amex", Name: "Amex", Balance: 400000},
		}
		res := Reconcile(obligations, nil)
		if res.AccountedViaSchedule != 0 {
			t.Errorf("accounted = %d, want 0", res.AccountedViaSchedule)
		}
		if len(res.Remaining) != 2 || res.Remaining[0].Balance != 800000 || res.Remaining[1].Balance != 400000 {
			t.Errorf("remaining = %+v, want original balances", res.Remaining)
		}
	})

	t.Run("partial coverage reduces the obligation", func(t *testing.T) {
		obligations := []core.CreditCardObligation{{AccountID: "cc-chase", Name: "Chase", Balance: 800000}}
		res := Reconcile(obligations, []core.Occurrence{ccTransfer(feb10, -300000, "cc-chase")})
		if res.AccountedViaSchedule != 300000 {
			t.Errorf("accounted = %d, want 300000", res.AccountedViaSchedule)
		}
		if len(res.Remaining) != 1 || res.Remaining[0].Balance != 500000 {
			t.Errorf("remaining = %+v, want 500000 on cc-chase", res.Remaining)
		}
	})

	t.Run("multiple transfers to the same card sum before flooring", func(t *testing.T) {
		obligations := []core.CreditCardObligation{{AccountID: "cc-chase", Name: "Chase", Balance: 800000}}
		res := Reconcile(obligations, []core.Occurrence{
			ccTransfer(feb10, -300000, "cc-chase"),
			ccTransfer(feb20, -300000, "cc-chase"),
		})
		if res.AccountedViaSchedule != 600000 {
			t.Errorf("accounted = %d, want 600000", res.AccountedViaSchedule)
		}
		if len(res.Remaining) != 1 || res.Remaining[0].Balance != 200000 {
			t.Errorf("remaining = %+v, want 200000", res.Remaining)
		}
	})

	t.Run("full coverage drops the obligation", func(t *testing.T) {
		obligations := []core.CreditCardObligation{{AccountID: "cc-chase", Name: "Chase", Balance: 800000}}
		res := Reconcile(obligations, []core.Occurrence{ccTransfer(feb10, -800000, "cc-chase")})
		if res.AccountedViaSchedule != 800000 {
			t.Errorf("accounted = %d, want 800000", res.AccountedViaSchedule)
		}
		if len(res.Remaining) != 0 {
			t.Errorf("remaining = %+v, want none", res.Remaining)
		}
	})

	t.Run("overshoot floors at zero and never becomes a credit", func(t *testing.T) {
		// Intended behavior, not an accident: a transfer larger than the
		// obligation accounts for the obligation only; the excess is dropped.
		obligations := []core.CreditCardObligation{{AccountID: "cc-chase", Name: "Chase", Balance: 800000}}
		res := Reconcile(obligations, []core.Occurrence{ccTransfer(feb10, -1000000, "cc-chase")})
		if res.AccountedViaSchedule != 800000 {
			t.Errorf("accounted = %d, want 800000 (obligation, not transfer)", res.AccountedViaSchedule)
		}
		if len(res.Remaining) != 0 {
			t.Errorf("remaining = %+v, want none", res.Remaining)
		}
		for _, ob := range res.Remaining {
			if ob.Balance.IsNegative() {
				t.Errorf("obligation %s went negative: %d", ob.Name, ob.Balance)
			}
		}
	})

	t.Run("amount conservation when transfers do not exceed obligations", func(t *testing.T) {
		obligations := []core.CreditCardObligation{
			{AccountID: "cc-chase", Name: "Chase", Balance: 800000},
			{AccountID: "cc-amex", Name: "Amex", Balance: 400000},
		}
		res := Reconcile(obligations, []core.Occurrence{
			ccTransfer(feb10, -250000, "cc-chase"),
			ccTransfer(feb20, -400000, "cc-amex"),
		})
		var remaining core.Money
		for _, ob := range res.Remaining {
			remaining = remaining.Add(ob.Balance)
		}
		if total := res.AccountedViaSchedule.Add(remaining); total != 1200000 {
			t.Errorf("accounted+remaining = %d, want 1200000", total)
		}
	})

	t.Run("transfers to non-card accounts are ignored", func(t *testing.T) {
		obligations := []core.CreditCardObligation{{AccountID: "cc-chase", Name: "Chase", Balance: 800000}}
		savings := core.Occurrence{Date: feb10, Amount: -500000, TransferAccountID: "acc-savings"}
		res := Reconcile(obligations, []core.Occurrence{savings})
		if res.AccountedViaSchedule != 0 || len(res.Remaining) != 1 || res.Remaining[0].Balance != 800000 {
			t.Errorf("non-card transfer must not reconcile: %+v", res)
		}
	})
}
