package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType determines how the available balance of an account
// is calculated.
type AccountType string

const (
	// AccountTypeDebit represents current and savings accounts.
	AccountTypeDebit AccountType = "debit"
	// AccountTypeCredit represents credit cards with a credit limit.
	AccountTypeCredit AccountType = "credit"
)

// Account represents a funding account, e.g. a bank account or a credit card.
//
// The balance of an account is never stored. It is always derived by folding
// the full transaction ledger of the account, so it cannot drift from the
// ledger.
type Account struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:account_name_user_id"`
	Name        string    `gorm:"uniqueIndex:account_name_user_id"`
	Bank        string
	LastFour    string
	Type        AccountType
	CreditLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Only meaningful for credit accounts
	Archived    bool
}

// BeforeSave ensures consistency for the account.
//
// It defaults the type to debit and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	if a.Type == "" {
		a.Type = AccountTypeDebit
	}

	if a.Type != AccountTypeDebit && a.Type != AccountTypeCredit {
		return ErrAccountTypeInvalid
	}

	if a.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Bank = strings.TrimSpace(a.Bank)
	a.LastFour = strings.TrimSpace(a.LastFour)

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Account)
	if tx.Statement.Changed("UserID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// DisplayName returns the name to show to the user for this account.
// When no explicit name is set, it is composed from the bank and the
// last four digits of the account number.
func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}

	if a.Bank != "" && a.LastFour != "" {
		return fmt.Sprintf("%s ····%s", a.Bank, a.LastFour)
	}

	if a.Bank != "" {
		return a.Bank
	}

	return "Unnamed account"
}

// Transactions returns the full transaction ledger for this account.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{AccountID: a.ID}).
		Order("datetime(transactions.date) ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Balance calculates the current balance of the account by folding the
// full transaction ledger. Positive amounts increase the balance, negative
// amounts decrease it.
func (a Account) Balance(db *gorm.DB) (balance decimal.Decimal, err error) {
	transactions, err := a.Transactions(db)
	if err != nil {
		return decimal.Zero, err
	}

	for _, t := range transactions {
		balance = balance.Add(t.Amount)
	}

	return balance, nil
}
