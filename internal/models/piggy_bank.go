package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Category classifies what a piggy bank is saved for.
type Category string

const (
	CategorySavings Category = "savings"
	CategoryTreat   Category = "treat"
	CategorySOS     Category = "sos"
	CategoryDebt    Category = "debt"
	CategoryCustom  Category = "custom"
)

// Categories is the closed set of valid piggy bank categories.
var Categories = []Category{CategorySavings, CategoryTreat, CategorySOS, CategoryDebt, CategoryCustom}

// DefaultIconID is used when a piggy bank is created without an icon.
const DefaultIconID = "default_piggy"

// PiggyBank represents a named savings goal with a target amount and an
// accumulated balance.
//
// The balance is only ever changed by Allocate (credit) and Open (debit),
// never by a direct field update. It always equals the sum of the amounts
// of all allocated transactions, minus the goal amount once opened.
type PiggyBank struct {
	DefaultModel
	Name         string
	Category     Category
	Balance      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Goal         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Completed    bool
	Opened       bool
	IconID       string
	Transactions []Transaction `json:"-"` // All transactions allocated to this piggy bank
}

var (
	ErrPiggyBankNameEmpty       = errors.New("piggy bank names must be set")
	ErrPiggyBankCategoryInvalid = errors.New("the piggy bank category must be one of: savings, treat, sos, debt, custom")
	ErrPiggyBankGoalNotPositive = errors.New("piggy bank goals must be larger than zero")
	ErrPiggyBankGoalNotReached  = errors.New("the piggy bank has not reached its goal yet")
	ErrPiggyBankAlreadyOpened   = errors.New("the piggy bank has already been opened")
)

// BeforeSave trims whitespace, defaults the icon and verifies
// the category is one of the allowed values.
func (p *PiggyBank) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.IconID = strings.TrimSpace(p.IconID)

	if p.Name == "" {
		return ErrPiggyBankNameEmpty
	}

	if !slices.Contains(Categories, p.Category) {
		return ErrPiggyBankCategoryInvalid
	}

	if p.IconID == "" {
		p.IconID = DefaultIconID
	}

	// A piggy bank is completed once the balance has reached the goal
	p.Completed = p.Balance.GreaterThanOrEqual(p.Goal)

	return nil
}

func (p *PiggyBank) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(p.Goal) {
		return ErrPiggyBankGoalNotPositive
	}

	return nil
}

// Open marks a piggy bank that has reached its goal as cashed out. The goal
// amount is debited from the balance, any surplus above the goal stays.
//
// Opening is a one-way transition. The update is conditional on the piggy
// bank not being opened yet so that concurrent requests debit the goal
// amount at most once.
func (p *PiggyBank) Open(db *gorm.DB) error {
	if p.Opened {
		return ErrPiggyBankAlreadyOpened
	}

	if p.Balance.LessThan(p.Goal) {
		return ErrPiggyBankGoalNotReached
	}

	res := db.Model(&PiggyBank{}).
		Where("id = ? AND NOT opened", p.ID).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance - goal"),
			"opened":     true,
			"updated_at": time.Now().In(time.UTC),
		})
	if res.Error != nil {
		return res.Error
	}

	// No row changed: another request opened the piggy bank between our
	// read and this update
	if res.RowsAffected == 0 {
		return ErrPiggyBankAlreadyOpened
	}

	return db.First(p, p.ID).Error
}

// TransactionIDs returns the IDs of all transactions allocated to this
// piggy bank, oldest allocation first.
func (p PiggyBank) TransactionIDs(db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := db.
		Model(&Transaction{}).
		Where(&Transaction{PiggyBankID: &p.ID}).
		// datetime() would truncate to seconds, losing the order of
		// allocations within the same second
		Order("transactions.updated_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return []uuid.UUID{}, err
	}

	return ids, nil
}
