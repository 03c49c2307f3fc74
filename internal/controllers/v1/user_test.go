package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Morgan", Note: "Shared household finances"})

	assert.Equal(suite.T(), "Morgan", user.Data.Name)
	assert.Equal(suite.T(), "Shared household finances", user.Data.Note)
	assert.Equal(suite.T(), "£", user.Data.Currency, "Currency needs to default to £")
}

func (suite *TestSuiteStandard) TestUserCreateCurrency() {
	user := createTestUser(suite.T(), v1.UserEditable{Currency: "€"})
	assert.Equal(suite.T(), "€", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestUserCreateCurrencyCode() {
	user := createTestUser(suite.T(), v1.UserEditable{CurrencyCode: "EUR"})
	assert.Equal(suite.T(), "€", user.Data.Currency)
}

func (suite *TestSuiteStandard) TestUserCreateInvalidCurrencyCode() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", []v1.UserEditable{{
		Name:         "Morgan",
		CurrencyCode: "not a code",
	}})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUserCreateBrokenBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", `{ "name": 2" }`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUserGetSingle() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Robin"})

	recorder := test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Robin", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUserGetFilterName() {
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Robin"})
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Morgan"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?name=Robin", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Robin", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestUserPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestUser(suite.T(), v1.UserEditable{})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Robin"})

	recorder := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"note": "Updated note",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Robin", response.Data.Name, "Name must be unchanged")
	assert.Equal(suite.T(), "Updated note", response.Data.Note)
}

func (suite *TestSuiteStandard) TestUserDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestUserInvalidUUID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUserOptions() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/users/%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
