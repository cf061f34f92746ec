package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single logged savings event, for example a
// skipped purchase. It is created unallocated and can be allocated to
// exactly one piggy bank, exactly once.
type Transaction struct {
	DefaultModel
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Label       string
	Source      string
	Note        string
	PiggyBankID *uuid.UUID // nil while the transaction is unallocated
	PiggyBank   PiggyBank  `json:"-"`
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionLabelEmpty        = errors.New("transaction labels must be set")
	ErrTransactionSourceEmpty       = errors.New("transaction sources must be set")
	ErrTransactionAlreadyAllocated  = errors.New("the transaction is already allocated to a piggy bank")
)

// BeforeSave trims whitespace from all string fields and verifies the
// required fields are set.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Label = strings.TrimSpace(t.Label)
	t.Source = strings.TrimSpace(t.Source)
	t.Note = strings.TrimSpace(t.Note)

	if t.Label == "" {
		return ErrTransactionLabelEmpty
	}

	if t.Source == "" {
		return ErrTransactionSourceEmpty
	}

	// Ensure that the PiggyBank ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.PiggyBankID != nil && *t.PiggyBankID == uuid.Nil {
		t.PiggyBankID = nil
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.PiggyBankID != nil {
		return tx.First(&PiggyBank{}, *t.PiggyBankID).Error
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// Allocate links an unallocated transaction to a piggy bank and credits the
// transaction amount to the piggy bank balance.
//
// Both writes happen inside a single database transaction. The link itself
// is a conditional update that only succeeds while piggy_bank_id is still
// NULL, so concurrent calls for the same transaction credit the piggy bank
// at most once: all but one caller get ErrTransactionAlreadyAllocated.
func Allocate(db *gorm.DB, transactionID, piggyBankID uuid.UUID) (Transaction, error) {
	var transaction Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&PiggyBank{}, piggyBankID).Error
		if err != nil {
			return err
		}

		res := tx.Model(&Transaction{}).
			Where("id = ? AND piggy_bank_id IS NULL", transactionID).
			UpdateColumns(map[string]interface{}{
				"piggy_bank_id": piggyBankID,
				"updated_at":    time.Now().In(time.UTC),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Nothing changed: either the transaction does not exist or it
			// is already allocated. Read it to tell the two apart.
			err = tx.First(&transaction, transactionID).Error
			if err != nil {
				return err
			}

			return ErrTransactionAlreadyAllocated
		}

		err = tx.First(&transaction, transactionID).Error
		if err != nil {
			return err
		}

		// Credit the piggy bank in the same statement that re-derives the
		// completed flag. Column references on the right hand side refer to
		// the values before the update.
		res = tx.Model(&PiggyBank{}).
			Where("id = ?", piggyBankID).
			UpdateColumns(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", transaction.Amount),
				"completed":  gorm.Expr("balance + ? >= goal", transaction.Amount),
				"updated_at": time.Now().In(time.UTC),
			})

		return res.Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}
