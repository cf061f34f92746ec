package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/girl-math/backend/internal/httputil"
	"github.com/girl-math/backend/internal/models"
)

func RegisterPiggyBankRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPiggyBanks)
		r.GET("", GetPiggyBanks)
		r.POST("", CreatePiggyBank)
	}
	{
		r.OPTIONS("/:id", OptionsPiggyBankDetail)
		r.GET("/:id", GetPiggyBank)
		r.PATCH("/:id", OpenPiggyBank)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PiggyBanks
// @Success		204
// @Router			/piggybanks [options]
func OptionsPiggyBanks(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PiggyBanks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/piggybanks/{id} [options]
func OptionsPiggyBankDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.PiggyBank{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List piggy banks
// @Description	Returns all piggy banks
// @Tags			PiggyBanks
// @Produce		json
// @Success		200	{array}		PiggyBank
// @Failure		500	{object}	httpError
// @Router			/piggybanks [get]
func GetPiggyBanks(c *gin.Context) {
	var piggyBanks []models.PiggyBank

	err := models.DB.Order("piggy_banks.name ASC").Find(&piggyBanks).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Transform resources to their API representation
	data := make([]PiggyBank, 0, len(piggyBanks))
	for _, piggyBank := range piggyBanks {
		apiResource, err := newPiggyBank(models.DB, piggyBank)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get piggy bank
// @Description	Returns a specific piggy bank
// @Tags			PiggyBanks
// @Produce		json
// @Success		200	{object}	PiggyBank
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/piggybanks/{id} [get]
func GetPiggyBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var piggyBank models.PiggyBank
	err = models.DB.First(&piggyBank, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	apiResource, err := newPiggyBank(models.DB, piggyBank)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, apiResource)
}

// @Summary		Create piggy bank
// @Description	Creates a new piggy bank
// @Tags			PiggyBanks
// @Accept			json
// @Produce		json
// @Success		201			{object}	PiggyBank
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			piggybank	body		PiggyBankEditable	true	"PiggyBank"
// @Router			/piggybanks [post]
func CreatePiggyBank(c *gin.Context) {
	var editable PiggyBankEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	piggyBank := editable.model()
	err = models.DB.Create(&piggyBank).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	apiResource, err := newPiggyBank(models.DB, piggyBank)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, apiResource)
}

// @Summary		Open piggy bank
// @Description	Marks a piggy bank that has reached its goal as cashed out, debiting the goal amount from its balance. This cannot be reversed.
// @Tags			PiggyBanks
// @Produce		json
// @Success		200	{object}	PiggyBank
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/piggybanks/{id} [patch]
func OpenPiggyBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var piggyBank models.PiggyBank
	err = models.DB.First(&piggyBank, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = piggyBank.Open(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	apiResource, err := newPiggyBank(models.DB, piggyBank)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, apiResource)
}
