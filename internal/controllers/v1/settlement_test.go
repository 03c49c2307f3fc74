package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/internal/settlement"
	"github.com/pennyflow/backend/internal/types"
	"github.com/pennyflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettlementRun() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(100),
	})

	directDebit := createTestDirectDebit(suite.T(), v1.DirectDebitEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Name:      "Netflix",
		Amount:    decimal.NewFromFloat(12.99),
		Active:    true,
		NextDate:  types.DayOf(time.Now()),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/settlements?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.SettlementResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), 1, response.Data.TotalProcessed)
	assert.Equal(suite.T(), 0, response.Data.TotalFailed)
	assert.Len(suite.T(), response.Data.Successes, 1)
	assert.Equal(suite.T(), directDebit.Data.ID, response.Data.Successes[0].DirectDebit.ID)

	// The settlement transaction is visible in the ledger
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?directDebit=%s", directDebit.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions.Data, 1)
	assert.True(suite.T(), transactions.Data[0].Amount.Equal(decimal.NewFromFloat(-12.99)))
}

func (suite *TestSuiteStandard) TestSettlementRunInsufficientFunds() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	_ = createTestDirectDebit(suite.T(), v1.DirectDebitEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Name:      "Gym",
		Amount:    decimal.NewFromFloat(30),
		Active:    true,
		NextDate:  types.DayOf(time.Now()),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/settlements?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.SettlementResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), 1, response.Data.TotalFailed)
	assert.Len(suite.T(), response.Data.Failures, 1)
	assert.Equal(suite.T(), settlement.FailureInsufficientFunds, response.Data.Failures[0].Kind)
}

func (suite *TestSuiteStandard) TestSettlementRunUserParameter() {
	tests := []struct {
		name string
		path string
	}{
		{"Missing", "http://example.com/v1/settlements"},
		{"Invalid", "http://example.com/v1/settlements?user=not-a-uuid"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, tt.path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	}
}

func (suite *TestSuiteStandard) TestSettlementRunUnknownUser() {
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/settlements?user=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestSettlementPreview() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(50),
	})

	_ = createTestDirectDebit(suite.T(), v1.DirectDebitEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Name:      "Spotify",
		Amount:    decimal.NewFromFloat(11.99),
		Active:    true,
		NextDate:  types.DayOf(time.Now()),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/settlements/preview?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.SettlementPreviewResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].WillSucceed)

	// The preview must not create transactions
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?user=%s", user.Data.ID), "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions.Data, 1)
}

func (suite *TestSuiteStandard) TestSettlementOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settlements", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settlements/preview", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
