package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/internal/types"
	"github.com/pennyflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{UserID: user.Data.ID})
	_ = createTestDirectDebit(suite.T(), v1.DirectDebitEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Name:      "Netflix",
		Amount:    decimal.NewFromFloat(12.99),
		NextDate:  types.DayOf(time.Now()),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:    user.Data.ID,
		AccountID: account.Data.ID,
		Amount:    decimal.NewFromFloat(-5),
	})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Netflix*",
		Category: "Entertainment",
	})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// Verify that all resources are deleted
	for _, url := range []string{
		"http://example.com/v1/users",
		"http://example.com/v1/accounts",
		"http://example.com/v1/direct-debits",
		"http://example.com/v1/transactions",
		"http://example.com/v1/match-rules",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, 0, "Resources remain at %s", url)
	}
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
}
