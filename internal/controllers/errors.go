package controllers

import (
	"errors"
	"net/http"

	"github.com/girl-math/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no piggy bank matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Allocation errors
var (
	errTransactionIDParameter = errors.New("the transactionId parameter must be set")
	errPiggyBankIDParameter   = errors.New("the piggyBankId parameter must be set")
)

// Advice errors
var errPromptNotSet = errors.New("a prompt is required")
