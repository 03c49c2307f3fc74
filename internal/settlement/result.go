package settlement

import (
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// FailureKind classifies why a direct debit could not be settled.
type FailureKind string

const (
	// FailureCardNotFound means the funding account reference is dangling.
	FailureCardNotFound FailureKind = "CARD_NOT_FOUND"
	// FailureInvalidAmount means the stored amount is not a positive number.
	FailureInvalidAmount FailureKind = "INVALID_AMOUNT"
	// FailureInsufficientFunds means the balance or credit check failed.
	FailureInsufficientFunds FailureKind = "INSUFFICIENT_FUNDS"
	// FailureTransactionFailed means the ledger write was rejected.
	FailureTransactionFailed FailureKind = "TRANSACTION_FAILED"
	// FailureProcessingError is the catch-all for unexpected errors during
	// the processing of one direct debit.
	FailureProcessingError FailureKind = "PROCESSING_ERROR"
)

// Success describes one settled direct debit.
type Success struct {
	DirectDebit   models.DirectDebit `json:"directDebit"`
	TransactionID uuid.UUID          `json:"transactionId"`
	Amount        decimal.Decimal    `json:"amount"`
	AccountName   string             `json:"accountName"`
}

// Failure describes one direct debit that could not be settled.
//
// Available and Required are only set for insufficient funds failures so
// that clients can tell the user how much was missing.
type Failure struct {
	DirectDebit models.DirectDebit `json:"directDebit"`
	Kind        FailureKind        `json:"kind"`
	Message     string             `json:"message"`
	Available   *decimal.Decimal   `json:"available,omitempty"`
	Required    *decimal.Decimal   `json:"required,omitempty"`
}

// Result is the outcome of one settlement run.
type Result struct {
	Successes      []Success `json:"successes"`
	Failures       []Failure `json:"failures"`
	TotalProcessed int       `json:"totalProcessed"`
	TotalFailed    int       `json:"totalFailed"`
	Message        string    `json:"message,omitempty"`
}

// Preview is the simulated outcome for one due direct debit.
type Preview struct {
	DirectDebit models.DirectDebit `json:"directDebit"`
	AccountName string             `json:"accountName"`
	Amount      decimal.Decimal    `json:"amount"`
	WillSucceed bool               `json:"willSucceed"`
	Available   string             `json:"availableBalance"`
	Reason      string             `json:"reason"`
}

// Upcoming is a direct debit that is due within the queried window.
type Upcoming struct {
	DirectDebit      models.DirectDebit `json:"directDebit"`
	DaysUntilPayment int                `json:"daysUntilPayment"`
}
