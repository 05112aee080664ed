package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mgv-tech/backoffice/internal/server/http/handlers"
	"github.com/mgv-tech/backoffice/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware. Routes
// fall into three rings: public, authenticated, and admin-only.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	quoteHandler := handlers.NewQuoteHandler(facade)
	projectHandler := handlers.NewProjectHandler(facade)
	newsletterHandler := handlers.NewNewsletterHandler(facade)

	api := engine.Group("/api")

	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.POST("/users/password-reset/request", userHandler.RequestPasswordReset)
	api.POST("/users/password-reset/confirm", userHandler.ConfirmPasswordReset)
	api.POST("/quotes", quoteHandler.Submit)
	api.GET("/orders/track/:orderNumber", orderHandler.Track)
	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)
	api.GET("/newsletter/unsubscribe/:token", newsletterHandler.UnsubscribeByToken)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders/mine", orderHandler.Mine)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/users/profile", userHandler.Profile)
	authed.PUT("/users/profile", userHandler.UpdateProfile)
	authed.GET("/quotes/mine", quoteHandler.Mine)
	authed.POST("/quotes/:id/customer-reply", quoteHandler.CustomerReply)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.GET("/orders", orderHandler.List)
	admin.PUT("/orders/:id/deliver", orderHandler.Deliver)
	admin.PUT("/orders/:id/status", orderHandler.SetStatus)
	admin.DELETE("/orders/:id", orderHandler.Delete)

	admin.GET("/users", userHandler.List)
	admin.GET("/users/admins", userHandler.ListAdmins)
	admin.PUT("/users/:id/role", userHandler.SetRole)
	admin.PUT("/users/:id/disable", userHandler.SetDisabled)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/quotes", quoteHandler.List)
	admin.GET("/quotes/assigned", quoteHandler.Assigned)
	admin.GET("/quotes/:id", quoteHandler.Get)
	admin.PUT("/quotes/:id/assign", quoteHandler.Assign)
	admin.POST("/quotes/:id/reply", quoteHandler.AdminReply)
	admin.PUT("/quotes/:id/status", quoteHandler.SetStatus)
	admin.DELETE("/quotes/:id", quoteHandler.Delete)

	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)

	admin.GET("/newsletter", newsletterHandler.List)
	admin.POST("/newsletter", newsletterHandler.Create)
	admin.PUT("/newsletter/:id", newsletterHandler.Update)
	admin.POST("/newsletter/:id/send", newsletterHandler.Send)
	admin.DELETE("/newsletter/:id", newsletterHandler.Delete)
	admin.GET("/newsletter/subscribers", newsletterHandler.Subscribers)
	admin.PUT("/newsletter/subscribers/:id", newsletterHandler.UpdateSubscriber)
	admin.DELETE("/newsletter/subscribers/:id", newsletterHandler.DeleteSubscriber)

	return engine
}
