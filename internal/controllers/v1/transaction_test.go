package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreateDefaults() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:      user.Data.ID,
		AccountID:   account.Data.ID,
		Amount:      decimal.NewFromFloat(-14.37),
		Description: "Groceries",
	})

	assert.Equal(suite.T(), models.TransactionTypeManual, transaction.Data.Type, "Type needs to default to manual")
	assert.Equal(suite.T(), models.TransactionStatusCompleted, transaction.Data.Status, "Status needs to default to completed")
	assert.False(suite.T(), transaction.Data.Date.IsZero(), "Date needs to default to now")
	assert.Nil(suite.T(), transaction.Data.DirectDebitID)
}

func (suite *TestSuiteStandard) TestTransactionCreateZeroAmount() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
	}})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestTransactionCreateUnknownAccount() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{
		UserID: user.Data.ID,
		Amount: decimal.NewFromFloat(5),
	}})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestTransactionGetSorted() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:      user.Data.ID,
		AccountID:   account.Data.ID,
		Amount:      decimal.NewFromFloat(-5),
		Description: "Older",
		Date:        time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:      user.Data.ID,
		AccountID:   account.Data.ID,
		Amount:      decimal.NewFromFloat(-5),
		Description: "Newer",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if !assert.Len(suite.T(), response.Data, 2) {
		suite.Assert().FailNow("Unexpected number of transactions")
	}
	assert.Equal(suite.T(), "Newer", response.Data[0].Description, "Transactions need to be sorted newest first")
}

func (suite *TestSuiteStandard) TestTransactionGetFilterAccount() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})
	otherAccount := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(-5),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: otherAccount.Data.ID,
		Amount:    decimal.NewFromFloat(-7),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?account=%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), account.Data.ID, response.Data[0].AccountID)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(-5),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"category": "Food",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(-5),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
