package controllers

import (
	"github.com/girl-math/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Amount decimal.Decimal `json:"amount" example:"5.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount of money saved
	Label  string          `json:"label" example:"Skipped Coffee" default:""`                                                                     // Short description of the savings event
	Source string          `json:"source" example:"manual" default:""`                                                                            // Where the savings event came from
	Note   string          `json:"note" example:"Made coffee at home instead" default:""`                                                         // Optional note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount: editable.Amount,
		Label:  editable.Label,
		Source: editable.Source,
		Note:   editable.Note,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	PiggyBankID *uuid.UUID `json:"piggyBankId"` // The piggy bank this transaction is allocated to. Null while unallocated.
}

// newTransaction returns the API representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount: model.Amount,
			Label:  model.Label,
			Source: model.Source,
			Note:   model.Note,
		},
		PiggyBankID: model.PiggyBankID,
	}
}

type TransactionQueryFilter struct {
	Source      string `form:"source" example:"manual*"` // Filter by source. Supports glob patterns.
	Unallocated bool   `form:"unallocated"`              // Only return transactions that are not allocated to a piggy bank yet
	Offset      uint   `form:"offset"`                   // The offset of the first transaction returned. Defaults to 0.
	Limit       int    `form:"limit,default=50"`         // Maximum number of transactions to return. Defaults to 50.
}

type AllocationEditable struct {
	TransactionID uuid.UUID `json:"transactionId" example:"059b5a26-a99c-4a41-a639-ed5de4714b48"` // ID of the transaction to allocate
	PiggyBankID   uuid.UUID `json:"piggyBankId" example:"8180b045-777b-4bed-a0f5-0e29be9fbbfb"`   // ID of the piggy bank to allocate the transaction to
}

type AllocationResponse struct {
	Message     string      `json:"message" example:"allocated 5.5 to Vacation"` // Confirmation naming the amount and the piggy bank
	Transaction Transaction `json:"transaction"`                                 // The allocated transaction
	PiggyBankID uuid.UUID   `json:"piggyBankId"`                                 // ID of the piggy bank the transaction was allocated to
}
