package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique          = errors.New("the account name must be unique for the user")
	ErrAccountTypeInvalid            = errors.New("the account type must be one of debit, credit")
	ErrDirectDebitAmountNotPositive  = errors.New("direct debit amounts must be larger than zero")
	ErrDirectDebitFrequencyInvalid   = errors.New("the frequency must be one of weekly, monthly, quarterly, yearly")
	ErrMatchRuleCategoryNotSet       = errors.New("match rules must set a category")
	ErrTransactionAmountZero         = errors.New("transaction amounts must not be zero")
	ErrCreditLimitNegative           = errors.New("the credit limit must not be negative")
	ErrCurrencyCodeInvalid           = errors.New("the currency code is not a valid ISO 4217 code")
)
