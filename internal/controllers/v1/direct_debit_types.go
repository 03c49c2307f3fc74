package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/types"
	pf_uuid "github.com/pennyflow/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// DirectDebitEditable represents all user configurable parameters
type DirectDebitEditable struct {
	UserID    uuid.UUID        `json:"userId" example:"d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"`    // ID of the user the direct debit belongs to
	AccountID uuid.UUID        `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the account the direct debit is charged to
	Name      string           `json:"name" example:"Netflix" default:""`                        // The payee
	Amount    decimal.Decimal  `json:"amount" example:"12.99"`                                   // The amount charged per occurrence
	Frequency models.Frequency `json:"frequency" example:"monthly" default:"monthly"`            // How often the direct debit recurs
	Category  string           `json:"category" example:"Entertainment" default:"Other"`         // Category for the settlement transactions
	Active    bool             `json:"active" example:"true" default:"false"`                    // Is the direct debit processed?
	NextDate  types.Day        `json:"nextDate" example:"2024-03-05"`                            // The next day the direct debit is due
}

func (editable DirectDebitEditable) model() models.DirectDebit {
	return models.DirectDebit{
		UserID:    editable.UserID,
		AccountID: editable.AccountID,
		Name:      editable.Name,
		Amount:    editable.Amount,
		Frequency: editable.Frequency,
		Category:  editable.Category,
		Active:    editable.Active,
		NextDate:  editable.NextDate,
	}
}

type DirectDebitLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/direct-debits/a6dcc5bd-8cd1-4ffa-9a8f-10b2a4e9ddbb"`                      // The direct debit itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?directDebit=a6dcc5bd-8cd1-4ffa-9a8f-10b2a4e9ddbb"`   // Settlement transactions for this direct debit
	Account      string `json:"account" example:"https://example.com/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                        // The account the direct debit is charged to
}

type DirectDebit struct {
	models.DefaultModel
	DirectDebitEditable
	Links DirectDebitLinks `json:"links"`

	// LastPaymentDate is updated by the settlement engine
	LastPaymentDate types.Day `json:"lastPaymentDate" example:"2024-02-05"`
}

func newDirectDebit(c *gin.Context, model models.DirectDebit) DirectDebit {
	url := httputil.RequestHost(c)

	return DirectDebit{
		DefaultModel: model.DefaultModel,
		DirectDebitEditable: DirectDebitEditable{
			UserID:    model.UserID,
			AccountID: model.AccountID,
			Name:      model.Name,
			Amount:    model.Amount,
			Frequency: model.Frequency,
			Category:  model.Category,
			Active:    model.Active,
			NextDate:  model.NextDate,
		},
		Links: DirectDebitLinks{
			Self:         fmt.Sprintf("%s/v1/direct-debits/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?directDebit=%s", url, model.ID),
			Account:      fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
		LastPaymentDate: model.LastPaymentDate,
	}
}

type DirectDebitListResponse struct {
	Data       []DirectDebit `json:"data"`                                                          // List of DirectDebits
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type DirectDebitCreateResponse struct {
	Data  []DirectDebitResponse `json:"data"`                                                          // List of the created DirectDebits or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DirectDebitCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DirectDebitResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DirectDebitResponse struct {
	Data  *DirectDebit `json:"data"`                                                          // Data for the DirectDebit
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// UpcomingPayment is a direct debit that is due within the queried window.
type UpcomingPayment struct {
	DirectDebit      DirectDebit `json:"directDebit"`                    // The direct debit
	DaysUntilPayment int         `json:"daysUntilPayment" example:"3"`   // Days from today until the payment
}

type UpcomingResponse struct {
	Data  []UpcomingPayment `json:"data"`                                            // The upcoming payments, most imminent first
	Error *string           `json:"error" example:"the user parameter must be set"`  // The error, if any occurred
}

type DirectDebitQueryFilter struct {
	UserID    pf_uuid.UUID     `form:"user"`                       // By ID of the User
	AccountID pf_uuid.UUID     `form:"account"`                    // By ID of the Account
	Name      string           `form:"name" filterField:"false"`   // By name
	Category  string           `form:"category"`                   // By category
	Frequency models.Frequency `form:"frequency"`                  // By frequency
	Active    bool             `form:"active"`                     // Is the DirectDebit active?
	Search    string           `form:"search" filterField:"false"` // By string in name
	Offset    uint             `form:"offset" filterField:"false"` // The offset of the first DirectDebit returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`  // Maximum number of DirectDebits to return. Defaults to 50.
}

func (f DirectDebitQueryFilter) model() models.DirectDebit {
	return models.DirectDebit{
		UserID:    f.UserID.UUID,
		AccountID: f.AccountID.UUID,
		Category:  f.Category,
		Frequency: f.Frequency,
		Active:    f.Active,
	}
}
