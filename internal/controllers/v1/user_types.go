package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name         string `json:"name" example:"Morgan" default:""`                    // Name of the user
	Note         string `json:"note" example:"Shared household finances" default:""` // Notes about the user
	Currency     string `json:"currency" example:"£" default:"£"`                    // The currency symbol used for display
	CurrencyCode string `json:"currencyCode" example:"GBP" default:""`               // ISO 4217 code, resolved to its symbol. Takes precedence over currency
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

// resolveCurrency resolves the ISO currency code to its symbol, if one is set.
func (editable *UserEditable) resolveCurrency() error {
	if editable.CurrencyCode == "" {
		return nil
	}

	symbol, err := models.CurrencySymbol(editable.CurrencyCode)
	if err != nil {
		return err
	}

	editable.Currency = symbol
	return nil
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/users/d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"`                  // The user itself
	Accounts     string `json:"accounts" example:"https://example.com/v1/accounts?user=d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"`      // Accounts for this user
	DirectDebits string `json:"directDebits" example:"https://example.com/v1/direct-debits?user=d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"` // Direct debits for this user
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?user=d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"` // Transactions for this user
}

type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := httputil.RequestHost(c)

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Accounts:     fmt.Sprintf("%s/v1/accounts?user=%s", url, model.ID),
			DirectDebits: fmt.Sprintf("%s/v1/direct-debits?user=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of Users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Data  []UserResponse `json:"data"`                                                          // List of the created Users or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the User
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{}
}
