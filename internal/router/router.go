package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/girl-math/backend/api"
	"github.com/girl-math/backend/internal/advice"
	"github.com/girl-math/backend/internal/controllers"
	"github.com/girl-math/backend/internal/controllers/healthz"
	"github.com/girl-math/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and all middlewares. The returned teardown
// function unregisters the Prometheus collectors so that Config can be
// called more than once per process, which the test suites do.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings. The mobile client does not send an Origin header, so
	// CORS is wide open unless explicitly restricted.
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		allowOrigins = "*"
	}
	log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

	r.Use(cors.New(cors.Config{
		AllowOrigins: strings.Fields(allowOrigins),
		AllowMethods: []string{"OPTIONS", "GET", "POST", "PATCH"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Girl Math"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Girl Math, a personal budgeting app for logging savings events and allocating them to goal-tracking piggy banks."

	teardown, err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config allows attaching the routes to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, advisor advice.Advisor) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))
	controllers.RegisterPiggyBankRoutes(group.Group("/piggybanks"))
	controllers.RegisterTransactionRoutes(group.Group("/transactions"))
	controllers.RegisterAdviceRoutes(group.Group("/ai"), advisor)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`
	Version      string `json:"version" example:"https://example.com/api/version"`
	PiggyBanks   string `json:"piggybanks" example:"https://example.com/api/piggybanks"`
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"`
	Advice       string `json:"ai" example:"https://example.com/api/ai"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:         url + "docs/index.html",
			Healthz:      url + "healthz",
			Version:      url + "version",
			PiggyBanks:   url + "piggybanks",
			Transactions: url + "transactions",
			Advice:       url + "ai",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
