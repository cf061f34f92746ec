package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/girl-math/backend/internal/advice"
	"github.com/girl-math/backend/internal/httputil"
)

type AdviceEditable struct {
	Prompt string `json:"prompt" example:"How do I start saving with a small income?"` // The question to ask
}

func RegisterAdviceRoutes(r *gin.RouterGroup, advisor advice.Advisor) {
	r.OPTIONS("", OptionsAdvice)
	r.POST("", GetAdvice(advisor))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advice
// @Success		204
// @Router			/ai [options]
func OptionsAdvice(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get financial advice
// @Description	Forwards the prompt to the external generative model and returns its answer verbatim. Upstream failures are returned with the upstream error message.
// @Tags			Advice
// @Accept			json
// @Produce		json
// @Success		200		{string}	string
// @Failure		400		{object}	httpError
// @Param			prompt	body		AdviceEditable	true	"Prompt"
// @Router			/ai [post]
func GetAdvice(advisor advice.Advisor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable AdviceEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		prompt := strings.TrimSpace(editable.Prompt)
		if prompt == "" {
			c.JSON(http.StatusBadRequest, httpError{
				Error: errPromptNotSet.Error(),
			})
			return
		}

		if advisor == nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: advice.ErrNotConfigured.Error(),
			})
			return
		}

		text, err := advisor.Advise(c.Request.Context(), prompt)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, text)
	}
}
