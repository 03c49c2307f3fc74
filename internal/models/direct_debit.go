package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is the schedule of a direct debit.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// DefaultCategory is used for direct debits without an explicit category.
const DefaultCategory = "Other"

// DirectDebit represents a recurring scheduled payment that is charged
// to an account on the days its schedule determines.
type DirectDebit struct {
	DefaultModel
	User            User      `json:"-"`
	UserID          uuid.UUID
	Account         Account `json:"-"`
	AccountID       uuid.UUID
	Name            string          // The payee, e.g. "Netflix"
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency       Frequency
	Category        string
	Active          bool
	NextDate        types.Day // The next day this direct debit is due
	LastPaymentDate types.Day // The day of the most recent settlement attempt
}

// BeforeSave normalizes the direct debit.
//
// The frequency is lower-cased and defaults to monthly, unknown
// frequencies are rejected. The category defaults to "Other".
func (d *DirectDebit) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	if d.Category == "" {
		d.Category = DefaultCategory
	}

	d.Frequency = Frequency(strings.ToLower(string(d.Frequency)))
	if d.Frequency == "" {
		d.Frequency = FrequencyMonthly
	}

	switch d.Frequency {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
	default:
		return ErrDirectDebitFrequencyInvalid
	}

	return nil
}

func (d *DirectDebit) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(d.Amount) {
		return ErrDirectDebitAmountNotPositive
	}

	return nil
}

func (d *DirectDebit) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*DirectDebit)
	return d.checkIntegrity(tx, *toSave)
}

func (d *DirectDebit) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(DirectDebit)

	if tx.Statement.Changed("AccountID") {
		err := d.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *DirectDebit) checkIntegrity(tx *gorm.DB, toSave DirectDebit) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}

// NextOccurrence returns the next due day after the current one,
// advanced by one period of the direct debit's frequency.
//
// The period is always added to the stored next date, never to the
// current day, so an overdue direct debit keeps its day of month.
func (d DirectDebit) NextOccurrence() types.Day {
	switch d.Frequency {
	case FrequencyWeekly:
		return d.NextDate.AddDate(0, 0, 7)
	case FrequencyQuarterly:
		return d.NextDate.AddDate(0, 3, 0)
	case FrequencyYearly:
		return d.NextDate.AddDate(1, 0, 0)
	default:
		return d.NextDate.AddDate(0, 1, 0)
	}
}
