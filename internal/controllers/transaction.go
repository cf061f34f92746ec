package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/girl-math/backend/internal/httputil"
	"github.com/girl-math/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}
	{
		r.OPTIONS("/allocate", OptionsAllocate)
		r.POST("/allocate", AllocateTransaction)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Transaction{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions/allocate [options]
func OptionsAllocate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List transactions
// @Description	Returns all transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		Transaction
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/transactions [get]
// @Param			source		query	string	false	"Filter by source. Supports glob patterns."
// @Param			unallocated	query	bool	false	"Only return transactions that are not allocated yet"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	q := models.DB.
		Order("datetime(transactions.created_at) DESC").
		Offset(int(filter.Offset)).
		Limit(filter.Limit)

	if filter.Unallocated {
		q = q.Where("transactions.piggy_bank_id IS NULL")
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Transform resources to their API representation. The source filter
	// supports glob patterns, so it is matched here and not in the query.
	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Source != "" && !glob.Glob(filter.Source, transaction.Source) {
			continue
		}

		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Transaction
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newTransaction(transaction))
}

// @Summary		Create transaction
// @Description	Creates a new, unallocated transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction := editable.model()
	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newTransaction(transaction))
}

// @Summary		Allocate transaction
// @Description	Allocates an unallocated transaction to a piggy bank and credits the transaction amount to its balance. A transaction can be allocated exactly once.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/transactions/allocate [post]
func AllocateTransaction(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if editable.TransactionID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errTransactionIDParameter.Error(),
		})
		return
	}

	if editable.PiggyBankID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPiggyBankIDParameter.Error(),
		})
		return
	}

	transaction, err := models.Allocate(models.DB, editable.TransactionID, editable.PiggyBankID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var piggyBank models.PiggyBank
	err = models.DB.First(&piggyBank, editable.PiggyBankID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{
		Message:     fmt.Sprintf("allocated %s to %s", transaction.Amount, piggyBank.Name),
		Transaction: newTransaction(transaction),
		PiggyBankID: piggyBank.ID,
	})
}
