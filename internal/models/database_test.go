package models_test

import (
	"github.com/girl-math/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestQueryErrorMessage() {
	err := models.DB.First(&models.PiggyBank{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no piggy bank matching your query", err.Error())

	err = models.DB.First(&models.Transaction{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no transaction matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDBIsGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.PiggyBank{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
