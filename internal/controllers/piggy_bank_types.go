package controllers

import (
	"github.com/girl-math/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PiggyBankEditable struct {
	Name     string          `json:"name" example:"Vacation" default:""`                                                                          // Name of the piggy bank
	Category models.Category `json:"type" example:"savings" enums:"savings,treat,sos,debt,custom"`                                                // What the piggy bank is saved for
	Goal     decimal.Decimal `json:"goal" example:"100" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount to save before the piggy bank can be opened
	IconID   string          `json:"iconId" example:"default_piggy" default:"default_piggy"`                                                      // Icon shown for the piggy bank
}

// model returns the database resource for the API representation of the editable fields
func (editable PiggyBankEditable) model() models.PiggyBank {
	return models.PiggyBank{
		Name:     editable.Name,
		Category: editable.Category,
		Goal:     editable.Goal,
		IconID:   editable.IconID,
	}
}

type PiggyBank struct {
	models.DefaultModel
	PiggyBankEditable
	Balance      decimal.Decimal `json:"balance" example:"35"`      // Sum of all allocated transaction amounts, minus the goal once opened
	Completed    bool            `json:"completed" example:"false"` // Has the balance reached the goal?
	Opened       bool            `json:"opened" example:"false"`    // Has the piggy bank been cashed out?
	Transactions []uuid.UUID     `json:"transactions"`              // IDs of the transactions allocated to this piggy bank
}

// newPiggyBank returns the API representation of the resource
func newPiggyBank(db *gorm.DB, model models.PiggyBank) (PiggyBank, error) {
	ids, err := model.TransactionIDs(db)
	if err != nil {
		return PiggyBank{}, err
	}

	return PiggyBank{
		DefaultModel: model.DefaultModel,
		PiggyBankEditable: PiggyBankEditable{
			Name:     model.Name,
			Category: model.Category,
			Goal:     model.Goal,
			IconID:   model.IconID,
		},
		Balance:      model.Balance,
		Completed:    model.Completed,
		Opened:       model.Opened,
		Transactions: ids,
	}, nil
}
