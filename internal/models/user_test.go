package models_test

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserCurrencyDefault() {
	user := suite.createTestUser(models.User{})
	assert.Equal(suite.T(), "£", user.Currency)
}

func (suite *TestSuiteStandard) TestCurrencySymbol() {
	tests := []struct {
		code     string
		expected string
	}{
		{"GBP", "£"},
		{"EUR", "€"},
	}

	for _, tt := range tests {
		symbol, err := models.CurrencySymbol(tt.code)
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), tt.expected, symbol, "code %s", tt.code)
	}
}

func (suite *TestSuiteStandard) TestCurrencySymbolInvalid() {
	_, err := models.CurrencySymbol("not a code")
	assert.ErrorIs(suite.T(), err, models.ErrCurrencyCodeInvalid)
}
