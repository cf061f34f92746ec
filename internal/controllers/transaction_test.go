package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/girl-math/backend/internal/controllers"
	"github.com/girl-math/backend/internal/models"
	"github.com/girl-math/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/transactions/allocate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsOptionsDetail() {
	tests := []struct {
		name   string // Name for the test
		status int    // Expected HTTP status
		id     string // String to use as ID
	}{
		{"Does not exist", http.StatusNotFound, uuid.New().String()},
		{"Invalid UUID", http.StatusBadRequest, "NotParseableAsUUID"},
		{"Success", http.StatusNoContent, createTestTransaction(suite.T(), controllers.TransactionEditable{}).ID.String()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := createTestTransaction(suite.T(), controllers.TransactionEditable{
		Amount: decimal.NewFromFloat(5.5),
		Label:  "Skipped Coffee",
		Source: "manual",
		Note:   "Made coffee at home instead",
	})

	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(5.5)))
	assert.Equal(suite.T(), "Skipped Coffee", transaction.Label)
	assert.Equal(suite.T(), "manual", transaction.Source)
	assert.Equal(suite.T(), "Made coffee at home instead", transaction.Note)
	assert.Nil(suite.T(), transaction.PiggyBankID, "New transactions must be unallocated")
	assert.NotEqual(suite.T(), uuid.Nil, transaction.ID)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name        string
		transaction controllers.TransactionEditable
		err         error
	}{
		{"Label is required", controllers.TransactionEditable{Amount: decimal.NewFromFloat(5.5), Source: "manual"}, models.ErrTransactionLabelEmpty},
		{"Source is required", controllers.TransactionEditable{Amount: decimal.NewFromFloat(5.5), Label: "Skipped Coffee"}, models.ErrTransactionSourceEmpty},
		{"Amount must be positive", controllers.TransactionEditable{Amount: decimal.NewFromFloat(-5.5), Label: "Skipped Coffee", Source: "manual"}, models.ErrTransactionAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/transactions", tt.transaction)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response errorResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err.Error(), response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetAll() {
	for range 3 {
		_ = createTestTransaction(suite.T(), controllers.TransactionEditable{})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions []controllers.Transaction
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions, 3)
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	for _, source := range []string{"manual", "bank_import", "bank_export"} {
		_ = createTestTransaction(suite.T(), controllers.TransactionEditable{Source: source})
	}

	allocated := createTestTransaction(suite.T(), controllers.TransactionEditable{Source: "manual"})
	piggyBank := createTestPiggyBank(suite.T(), controllers.PiggyBankEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/transactions/allocate", controllers.AllocationEditable{
		TransactionID: allocated.ID,
		PiggyBankID:   piggyBank.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string // Name for the test
		query string // Query string
		count int    // Expected number of transactions
	}{
		{"No filter", "", 4},
		{"Source", "source=manual", 2},
		{"Source glob", "source=bank*", 2},
		{"Source without match", "source=girlfriend", 0},
		{"Unallocated", "unallocated=true", 3},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var transactions []controllers.Transaction
			test.DecodeResponse(t, &r, &transactions)
			assert.Len(t, transactions, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	tests := []struct {
		name   string // Name for the test
		status int    // Expected HTTP status
		id     string // String to use as ID
	}{
		{"Does not exist", http.StatusNotFound, uuid.New().String()},
		{"Invalid UUID", http.StatusBadRequest, "not-a-uuid"},
		{"Success", http.StatusOK, createTestTransaction(suite.T(), controllers.TransactionEditable{}).ID.String()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsAllocate() {
	piggyBank := createTestPiggyBank(suite.T(), controllers.PiggyBankEditable{Name: "Vacation"})
	transaction := createTestTransaction(suite.T(), controllers.TransactionEditable{
		Amount: decimal.NewFromFloat(5.5),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/transactions/allocate", controllers.AllocationEditable{
		TransactionID: transaction.ID,
		PiggyBankID:   piggyBank.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "allocated 5.5 to Vacation", response.Message)
	assert.Equal(suite.T(), piggyBank.ID, response.PiggyBankID)
	assert.Equal(suite.T(), transaction.ID, response.Transaction.ID)
	if assert.NotNil(suite.T(), response.Transaction.PiggyBankID) {
		assert.Equal(suite.T(), piggyBank.ID, *response.Transaction.PiggyBankID)
	}

	// The piggy bank was credited and lists the transaction
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/piggybanks/%s", piggyBank.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var credited controllers.PiggyBank
	test.DecodeResponse(suite.T(), &r, &credited)
	assert.True(suite.T(), credited.Balance.Equal(transaction.Amount), "Balance is %s, should be %s", credited.Balance, transaction.Amount)
	assert.Equal(suite.T(), []uuid.UUID{transaction.ID}, credited.Transactions)
}

func (suite *TestSuiteStandard) TestTransactionsAllocateInvalid() {
	piggyBank := createTestPiggyBank(suite.T(), controllers.PiggyBankEditable{})
	transaction := createTestTransaction(suite.T(), controllers.TransactionEditable{})

	tests := []struct {
		name       string // Name for the test
		status     int    // Expected HTTP status
		allocation controllers.AllocationEditable
	}{
		{"Transaction ID not set", http.StatusBadRequest, controllers.AllocationEditable{PiggyBankID: piggyBank.ID}},
		{"Piggy bank ID not set", http.StatusBadRequest, controllers.AllocationEditable{TransactionID: transaction.ID}},
		{"Transaction does not exist", http.StatusNotFound, controllers.AllocationEditable{TransactionID: uuid.New(), PiggyBankID: piggyBank.ID}},
		{"Piggy bank does not exist", http.StatusNotFound, controllers.AllocationEditable{TransactionID: transaction.ID, PiggyBankID: uuid.New()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/transactions/allocate", tt.allocation)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsAllocateTwice() {
	piggyBank := createTestPiggyBank(suite.T(), controllers.PiggyBankEditable{})
	transaction := createTestTransaction(suite.T(), controllers.TransactionEditable{})

	allocation := controllers.AllocationEditable{
		TransactionID: transaction.ID,
		PiggyBankID:   piggyBank.ID,
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/transactions/allocate", allocation)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/transactions/allocate", allocation)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrTransactionAlreadyAllocated.Error(), response.Error)

	// The balance was credited exactly once
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/piggybanks/%s", piggyBank.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var credited controllers.PiggyBank
	test.DecodeResponse(suite.T(), &r, &credited)
	assert.True(suite.T(), credited.Balance.Equal(transaction.Amount), "Balance is %s, should be %s", credited.Balance, transaction.Amount)
}

// TestTransactionsSaveUpAndOpen walks through saving up for a goal: logging
// transactions, allocating them, watching the completed flag flip and finally
// opening the piggy bank.
func (suite *TestSuiteStandard) TestTransactionsSaveUpAndOpen() {
	piggyBank := createTestPiggyBank(suite.T(), controllers.PiggyBankEditable{
		Name: "Vacation",
		Goal: decimal.NewFromFloat(100),
	})

	steps := []struct {
		amount    float64
		balance   float64
		completed bool
	}{
		{5, 5, false},
		{35, 40, false},
		{35, 75, false},
		{35, 110, true},
	}

	var allocated []uuid.UUID
	for _, step := range steps {
		transaction := createTestTransaction(suite.T(), controllers.TransactionEditable{
			Amount: decimal.NewFromFloat(step.amount),
		})
		allocated = append(allocated, transaction.ID)

		r := test.Request(suite.T(), http.MethodPost, "http://example.com/transactions/allocate", controllers.AllocationEditable{
			TransactionID: transaction.ID,
			PiggyBankID:   piggyBank.ID,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/piggybanks/%s", piggyBank.ID), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var current controllers.PiggyBank
		test.DecodeResponse(suite.T(), &r, &current)
		assert.True(suite.T(), current.Balance.Equal(decimal.NewFromFloat(step.balance)), "Balance is %s, should be %v", current.Balance, step.balance)
		assert.Equal(suite.T(), step.completed, current.Completed)
	}

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/piggybanks/%s", piggyBank.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var opened controllers.PiggyBank
	test.DecodeResponse(suite.T(), &r, &opened)

	assert.True(suite.T(), opened.Opened)
	assert.True(suite.T(), opened.Balance.Equal(decimal.NewFromFloat(10)), "Balance is %s, should be 10", opened.Balance)
	assert.Equal(suite.T(), allocated, opened.Transactions, "Transactions are not in allocation order")
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		// Skipping POST /allocate here since the error for a failing
		// transaction begin does not pass through the database callbacks
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions, ""},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/transactions%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

			var response errorResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, models.ErrGeneral.Error(), response.Error)
		})
	}
}
