package models_test

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleCategoryRequired() {
	user := suite.createTestUser(models.User{})

	rule := models.MatchRule{UserID: user.ID, Match: "Netflix*"}
	err := models.DB.Create(&rule).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleCategoryNotSet)
}

func (suite *TestSuiteStandard) TestCategoryFor() {
	user := suite.createTestUser(models.User{})

	suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 2, Match: "*", Category: "Misc"})
	suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 1, Match: "Netflix*", Category: "Entertainment"})
	suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 1, Match: "British Gas", Category: "Utilities"})

	tests := []struct {
		payee    string
		expected string
	}{
		{"Netflix Subscription", "Entertainment"},
		{"British Gas", "Utilities"},
		{"Anything else", "Misc"},
	}

	for _, tt := range tests {
		category, err := models.CategoryFor(models.DB, user.ID, tt.payee, models.DefaultCategory)
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), tt.expected, category, "payee %q", tt.payee)
	}
}

func (suite *TestSuiteStandard) TestCategoryForFallback() {
	user := suite.createTestUser(models.User{})

	category, err := models.CategoryFor(models.DB, user.ID, "Netflix", models.DefaultCategory)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultCategory, category)
}

func (suite *TestSuiteStandard) TestCategoryForOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	suite.createTestMatchRule(models.MatchRule{UserID: other.ID, Priority: 1, Match: "*", Category: "Entertainment"})

	category, err := models.CategoryFor(models.DB, user.ID, "Netflix", models.DefaultCategory)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultCategory, category)
}
