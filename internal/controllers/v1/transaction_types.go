package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	pf_uuid "github.com/pennyflow/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	UserID      uuid.UUID                `json:"userId" example:"d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"`    // ID of the user the transaction belongs to
	AccountID   uuid.UUID                `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the transaction is booked on
	Amount      decimal.Decimal          `json:"amount" example:"-14.37"`                                  // The amount, positive for money coming in, negative for money going out
	Description string                   `json:"description" example:"Groceries" default:""`               // Description of the transaction
	Category    string                   `json:"category" example:"Food" default:""`                       // Category of the transaction
	Date        time.Time                `json:"date" example:"2024-02-05T00:00:00Z"`                      // Date of the transaction
	Type        models.TransactionType   `json:"type" example:"manual" default:"manual"`                   // How the transaction came to be
	Status      models.TransactionStatus `json:"status" example:"completed" default:"completed"`           // Processing state
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:      editable.UserID,
		AccountID:   editable.AccountID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Category:    editable.Category,
		Date:        editable.Date,
		Type:        editable.Type,
		Status:      editable.Status,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The account of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// DirectDebitID is set by the settlement engine for settlement transactions
	DirectDebitID *uuid.UUID `json:"directDebitId" example:"a6dcc5bd-8cd1-4ffa-9a8f-10b2a4e9ddbb"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestHost(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:      model.UserID,
			AccountID:   model.AccountID,
			Amount:      model.Amount,
			Description: model.Description,
			Category:    model.Category,
			Date:        model.Date,
			Type:        model.Type,
			Status:      model.Status,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
		DirectDebitID: model.DirectDebitID,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	UserID        pf_uuid.UUID             `form:"user"`                       // By ID of the User
	AccountID     pf_uuid.UUID             `form:"account"`                    // By ID of the Account
	DirectDebitID pf_uuid.UUID             `form:"directDebit"`                // By ID of the DirectDebit that created the transaction
	Category      string                   `form:"category"`                   // By category
	Type          models.TransactionType   `form:"type"`                       // By type
	Status        models.TransactionStatus `form:"status"`                     // By status
	Offset        uint                     `form:"offset" filterField:"false"` // The offset of the first Transaction returned. Defaults to 0.
	Limit         int                      `form:"limit" filterField:"false"`  // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	transaction := models.Transaction{
		UserID:    f.UserID.UUID,
		AccountID: f.AccountID.UUID,
		Category:  f.Category,
		Type:      f.Type,
		Status:    f.Status,
	}

	if f.DirectDebitID.UUID != uuid.Nil {
		id := f.DirectDebitID.UUID
		transaction.DirectDebitID = &id
	}

	return transaction, nil
}
