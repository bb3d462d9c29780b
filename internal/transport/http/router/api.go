package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-users-api/internal/transport/http/handler"
	mdw "go-users-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, users *handler.UserHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.ErrorMapping(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(mdw.MetricsHandler()))

	users.Mount(r.Group("/api"))

	return r
}
