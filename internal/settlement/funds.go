package settlement

import (
	"fmt"

	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Funds is the result of checking whether an account covers an amount.
type Funds struct {
	Sufficient bool
	// Balance is the current ledger balance of the account.
	Balance decimal.Decimal
	// Available is the amount that can actually be spent. For credit
	// accounts this is the credit limit plus the (usually negative)
	// balance, for all other accounts it equals Balance.
	Available decimal.Decimal
	// Display is the available amount formatted for the user, e.g. "£12.00".
	Display string
}

// ResolveFunds checks whether an account covers the required amount.
//
// The balance is always computed by folding the account's full transaction
// ledger, it is never read from a stored counter. When the ledger cannot be
// read, the returned Funds report insufficient funds and the error is
// returned so that callers never mistake a failed read for covered funds.
func ResolveFunds(db *gorm.DB, account models.Account, required decimal.Decimal, symbol string) (Funds, error) {
	balance, err := account.Balance(db)
	if err != nil {
		return Funds{
			Sufficient: false,
			Display:    FormatAmount(decimal.Zero, symbol),
		}, err
	}

	available := balance
	if account.Type == models.AccountTypeCredit {
		available = account.CreditLimit.Add(balance)
	}

	return Funds{
		Sufficient: available.GreaterThanOrEqual(required),
		Balance:    balance,
		Available:  available,
		Display:    FormatAmount(available, symbol),
	}, nil
}

// FormatAmount renders an amount for display with the user's currency
// symbol and two decimal places. Amounts are stored as exact decimals,
// formatting only happens at presentation boundaries like this one.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = "£"
	}

	if amount.IsNegative() {
		return fmt.Sprintf("-%s%s", symbol, amount.Neg().StringFixed(2))
	}

	return fmt.Sprintf("%s%s", symbol, amount.StringFixed(2))
}
