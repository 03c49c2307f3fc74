package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pennyflow/backend/internal/controllers/v1"
	"github.com/pennyflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	matchRule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Netflix*",
		Category: "Entertainment",
	})

	assert.Equal(suite.T(), "Netflix*", matchRule.Data.Match)
	assert.Equal(suite.T(), "Entertainment", matchRule.Data.Category)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateNoCategory() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{{
		UserID: user.Data.ID,
		Match:  "Netflix*",
	}})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateUnknownUser() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{{
		Match:    "Netflix*",
		Category: "Entertainment",
	}})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestMatchRuleGetSorted() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Priority: 2,
		Match:    "Amazon*",
		Category: "Shopping",
	})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Priority: 1,
		Match:    "Netflix*",
		Category: "Entertainment",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if !assert.Len(suite.T(), response.Data, 2) {
		suite.Assert().FailNow("Unexpected number of match rules")
	}
	assert.Equal(suite.T(), "Netflix*", response.Data[0].Match, "Match rules need to be sorted by priority")
}

func (suite *TestSuiteStandard) TestMatchRuleGetFilterCategory() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Netflix*",
		Category: "Entertainment",
	})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Tesco*",
		Category: "Food",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules?category=Food", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Tesco*", response.Data[0].Match)
}

func (suite *TestSuiteStandard) TestMatchRuleUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	matchRule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Netflix*",
		Category: "Entertainment",
	})

	recorder := test.Request(suite.T(), http.MethodPatch, matchRule.Data.Links.Self, map[string]any{
		"priority": 5,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), uint(5), response.Data.Priority)
}

func (suite *TestSuiteStandard) TestMatchRuleDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	matchRule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		UserID:   user.Data.ID,
		Match:    "Netflix*",
		Category: "Entertainment",
	})

	recorder := test.Request(suite.T(), http.MethodDelete, matchRule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules/%s", matchRule.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
