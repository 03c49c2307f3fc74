package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// User represents a person using pennyflow. All other resources
// belong to exactly one user.
type User struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // The currency symbol used for display, e.g. "£"
}

// BeforeSave trims whitespace and sets the default currency.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	if u.Currency == "" {
		u.Currency = "£"
	}

	return nil
}

// CurrencySymbol resolves an ISO 4217 currency code to its symbol.
func CurrencySymbol(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCurrencyCodeInvalid, code)
	}

	return fmt.Sprintf("%s", currency.Symbol(unit)), nil
}
