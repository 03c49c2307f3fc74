package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	pf_uuid "github.com/pennyflow/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	UserID      uuid.UUID          `json:"userId" example:"d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"`    // ID of the user the account belongs to
	Name        string             `json:"name" example:"Joint account" default:""`                  // Name of the account
	Bank        string             `json:"bank" example:"Monzo" default:""`                          // Bank the account is held with
	LastFour    string             `json:"lastFour" example:"1234" default:""`                       // Last four digits of the account number
	Type        models.AccountType `json:"type" example:"debit" default:"debit"`                     // Type of the account, debit or credit
	CreditLimit decimal.Decimal    `json:"creditLimit" example:"500" default:"0"`                    // Credit limit, only used for credit accounts
	Archived    bool               `json:"archived" example:"true" default:"false"`                  // Is the account archived?
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		UserID:      editable.UserID,
		Name:        editable.Name,
		Bank:        editable.Bank,
		LastFour:    editable.LastFour,
		Type:        editable.Type,
		CreditLimit: editable.CreditLimit,
		Archived:    editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                       // The account itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`   // Transactions for this account
	DirectDebits string `json:"directDebits" example:"https://example.com/v1/direct-debits?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Direct debits charged to this account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`

	// These fields are computed from the transaction ledger
	Balance   decimal.Decimal `json:"balance" example:"271.98"`   // Current balance of the account
	Available decimal.Decimal `json:"available" example:"771.98"` // Spendable amount, includes the credit limit for credit accounts
}

func newAccount(c *gin.Context, db *gorm.DB, model models.Account) (Account, error) {
	url := httputil.RequestHost(c)

	account := Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			UserID:      model.UserID,
			Name:        model.Name,
			Bank:        model.Bank,
			LastFour:    model.LastFour,
			Type:        model.Type,
			CreditLimit: model.CreditLimit,
			Archived:    model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
			DirectDebits: fmt.Sprintf("%s/v1/direct-debits?account=%s", url, model.ID),
		},
	}

	balance, err := model.Balance(db)
	if err != nil {
		return Account{}, err
	}

	account.Balance = balance
	account.Available = balance
	if model.Type == models.AccountTypeCredit {
		account.Available = model.CreditLimit.Add(balance)
	}

	return account, nil
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of Accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of the created Accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the Account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	UserID   pf_uuid.UUID       `form:"user"`                       // By ID of the User
	Name     string             `form:"name" filterField:"false"`   // By name
	Type     models.AccountType `form:"type"`                       // By type
	Archived bool               `form:"archived"`                   // Is the Account archived?
	Search   string             `form:"search" filterField:"false"` // By string in name
	Offset   uint               `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		UserID:   f.UserID.UUID,
		Type:     f.Type,
		Archived: f.Archived,
	}
}
