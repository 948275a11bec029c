package model

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	source := newCheckingAccount(t, 500.0, 200.0)
	destination := newSavingsAccount(t, 1000.0, 0.01)

	result, err := Transfer(source, destination, decimal.NewFromFloat(150.0))
	assert.NoError(t, err)
	assert.Equal(t, "350.00", result.SourceBalance.StringFixed(2))
	assert.Equal(t, "1150.00", result.DestinationBalance.StringFixed(2))
	assert.Len(t, source.Transactions(), 1)
	assert.Len(t, destination.Transactions(), 1)
}

func TestTransferFromOverdrawnChecking(t *testing.T) {
	// -100 with a 200 overdraft leaves 100 of headroom; 150 crosses the floor.
	source := newCheckingAccount(t, 500.0, 200.0)
	_, err := source.Withdraw(decimal.NewFromFloat(600.0))
	assert.NoError(t, err)
	assert.Equal(t, "-100.00", source.CurrentBalance().StringFixed(2))

	destination := newSavingsAccount(t, 1000.0, 0.01)

	_, err = Transfer(source, destination, decimal.NewFromFloat(150.0))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "-100.00", source.CurrentBalance().StringFixed(2))
	assert.Equal(t, "1000.00", destination.CurrentBalance().StringFixed(2))
	assert.Empty(t, destination.Transactions())
}

func TestTransferInsufficientFundsLeavesDestinationUntouched(t *testing.T) {
	source := newCheckingAccount(t, 100.0, 500.0)
	destination := newSavingsAccount(t, 1000.0, 0.01)

	_, err := Transfer(source, destination, decimal.NewFromFloat(10000.0))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "100.00", source.CurrentBalance().StringFixed(2))
	assert.Equal(t, "1000.00", destination.CurrentBalance().StringFixed(2))
	assert.Empty(t, source.Transactions())
	assert.Empty(t, destination.Transactions())
}

func TestTransferSameAccount(t *testing.T) {
	account := newSavingsAccount(t, 100.0, 0.01)

	_, err := Transfer(account, account, decimal.NewFromFloat(10.0))
	assert.ErrorIs(t, err, ErrSameAccount)
	assert.Equal(t, "100.00", account.CurrentBalance().StringFixed(2))
}

func TestTransferInvalidAmount(t *testing.T) {
	source := newSavingsAccount(t, 100.0, 0.01)
	destination := newSavingsAccount(t, 100.0, 0.01)

	_, err := Transfer(source, destination, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = Transfer(source, destination, decimal.NewFromFloat(-10))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, source.Transactions())
	assert.Empty(t, destination.Transactions())
}

// Concurrent transfers in both directions on the same pair must never push a
// checking account past its overdraft floor, and the pair's total must be
// conserved.
func TestConcurrentTransfersHoldOverdraftFloor(t *testing.T) {
	a := newCheckingAccount(t, 300.0, 200.0)
	b := newCheckingAccount(t, 300.0, 200.0)
	amount := decimal.NewFromFloat(50.0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = Transfer(a, b, amount)
		}()
		go func() {
			defer wg.Done()
			_, _ = Transfer(b, a, amount)
		}()
	}
	wg.Wait()

	assert.True(t, a.CurrentBalance().GreaterThanOrEqual(a.OverdraftLimit.Neg()))
	assert.True(t, b.CurrentBalance().GreaterThanOrEqual(b.OverdraftLimit.Neg()))
	assert.Equal(t, "600.00", a.CurrentBalance().Add(b.CurrentBalance()).StringFixed(2))
	assert.True(t, replayBalance(decimal.NewFromFloat(300.0), a.Transactions()).Equal(a.CurrentBalance()))
	assert.True(t, replayBalance(decimal.NewFromFloat(300.0), b.Transactions()).Equal(b.CurrentBalance()))
}
