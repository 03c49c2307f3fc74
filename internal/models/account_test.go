package models_test

import (
	"strings"
	"testing"

	"github.com/pennyflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTypeDefaultsToDebit() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	assert.Equal(suite.T(), models.AccountTypeDebit, account.Type)
}

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	user := suite.createTestUser(models.User{})

	account := models.Account{UserID: user.ID, Name: "Checking", Type: "prepaid"}
	err := models.DB.Create(&account).Error

	assert.ErrorIs(suite.T(), err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestAccountCreditLimitNegative() {
	user := suite.createTestUser(models.User{})

	account := models.Account{
		UserID:      user.ID,
		Name:        "Credit Card",
		Type:        models.AccountTypeCredit,
		CreditLimit: decimal.NewFromFloat(-500),
	}
	err := models.DB.Create(&account).Error

	assert.ErrorIs(suite.T(), err, models.ErrCreditLimitNegative)
}

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	name := "  Main account  "
	bank := " Barclays\t"

	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: name, Bank: bank})

	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
	assert.Equal(suite.T(), strings.TrimSpace(bank), account.Bank)
}

func (suite *TestSuiteStandard) TestAccountDisplayName() {
	tests := []struct {
		name     string
		account  models.Account
		expected string
	}{
		{"explicit name", models.Account{Name: "Main account", Bank: "Barclays", LastFour: "1234"}, "Main account"},
		{"bank and last four", models.Account{Bank: "Barclays", LastFour: "1234"}, "Barclays ····1234"},
		{"bank only", models.Account{Bank: "Barclays"}, "Barclays"},
		{"nothing set", models.Account{}, "Unnamed account"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.DisplayName())
		})
	}
}

func (suite *TestSuiteStandard) TestAccountBalance() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	suite.createTestTransaction(models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(100)})
	suite.createTestTransaction(models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-30)})
	suite.createTestTransaction(models.Transaction{UserID: user.ID, AccountID: account.ID, Amount: decimal.NewFromFloat(-20)})

	balance, err := account.Balance(models.DB)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(50)), "balance is %s, expected 50", balance)
}

func (suite *TestSuiteStandard) TestAccountBalanceEmptyLedger() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	balance, err := account.Balance(models.DB)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.IsZero())
}

func (suite *TestSuiteStandard) TestAccountBalanceDBError() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	suite.CloseDB()

	_, err := account.Balance(models.DB)
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAccountNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking"})

	account := models.Account{UserID: user.ID, Name: "Checking"}
	err := models.DB.Create(&account).Error

	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	// The same name is allowed for another user
	otherUser := suite.createTestUser(models.User{})
	suite.createTestAccount(models.Account{UserID: otherUser.ID, Name: "Checking"})
}
