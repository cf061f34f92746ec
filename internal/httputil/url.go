package httputil

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// RequestURL returns the base URL the API is reachable at, with a trailing
// slash. It is set for every request by the router's URL middleware.
func RequestURL(c *gin.Context) string {
	url := c.GetString("baseURL")
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}

	return url
}
