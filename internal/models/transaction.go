package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies how a ledger entry came to be.
type TransactionType string

const (
	// TransactionTypeManual is a transaction entered by the user.
	TransactionTypeManual TransactionType = "manual"
	// TransactionTypeDirectDebit is a transaction written by the settlement engine.
	TransactionTypeDirectDebit TransactionType = "direct_debit"
)

// TransactionStatus is the processing state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is one entry in the ledger of an account.
//
// The sign of the amount carries the direction: positive amounts are
// credits, negative amounts are debits. Ledger entries written by the
// settlement engine are never updated afterwards.
type Transaction struct {
	DefaultModel
	User          User      `json:"-"`
	UserID        uuid.UUID
	Account       Account `json:"-"`
	AccountID     uuid.UUID
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description   string
	Category      string
	Date          time.Time
	Type          TransactionType
	Status        TransactionStatus
	DirectDebitID *uuid.UUID // Back-reference to the direct debit that caused this entry, if any
}

// BeforeSave defaults the date, type and status and normalizes the
// date's timezone to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Amount.IsZero() {
		return ErrTransactionAmountZero
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Type == "" {
		t.Type = TransactionTypeManual
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}
