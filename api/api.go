package api

import (
	"fmt"
	"os"
	"time"

	"stockhealth/internal/app"
	"stockhealth/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	AnalysisHandler app.AnalysisHandler
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	if _, err := os.Stat("templates"); err == nil {
		router.LoadHTMLGlob("templates/*.html")
		router.GET("/", func(ctx *gin.Context) {
			ctx.HTML(200, "index.html", nil)
		})
		router.GET("/results", func(ctx *gin.Context) {
			ctx.HTML(200, "results.html", nil)
		})
	} else {
		logger.Warn("templates directory not found - serving API routes only")
	}

	router.POST("/analyze", m.analyze)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	ctx.Set("requestID", requestID)

	start := time.Now().UTC()
	ctx.Next()

	logger.Info(
		"%s %s [%s] -> %d in %dms",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		requestID,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
