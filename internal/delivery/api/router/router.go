// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"peeko/config"
	"peeko/internal/delivery/api/middleware"
	"peeko/internal/delivery/api/router/handler"
	"peeko/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// openMessageScope namespaces the device polling rate limit.
const openMessageScope = "messages:open"

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	SocialHandler      *handler.SocialHandler
	MessageHandler     *handler.MessageHandler
	DeviceHandler      *handler.DeviceHandler
	FirmwareHandler    *handler.FirmwareHandler
	WebhookHandler     *handler.WebhookHandler
	MaintenanceHandler *handler.MaintenanceHandler
	AccessMiddleware   *middleware.AccessMiddleware
	RateLimiter        service.RateLimiter
	Config             *config.Config
	Logger             *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	socialHandler      *handler.SocialHandler
	messageHandler     *handler.MessageHandler
	deviceHandler      *handler.DeviceHandler
	firmwareHandler    *handler.FirmwareHandler
	webhookHandler     *handler.WebhookHandler
	maintenanceHandler *handler.MaintenanceHandler
	access             *middleware.AccessMiddleware
	rateLimiter        service.RateLimiter
	config             *config.Config
	logger             *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		socialHandler:      params.SocialHandler,
		messageHandler:     params.MessageHandler,
		deviceHandler:      params.DeviceHandler,
		firmwareHandler:    params.FirmwareHandler,
		webhookHandler:     params.WebhookHandler,
		maintenanceHandler: params.MaintenanceHandler,
		access:             params.AccessMiddleware,
		rateLimiter:        params.RateLimiter,
		config:             params.Config,
		logger:             params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Identity provider callbacks, authenticated by body signature
	webhooks := e.Group("/webhooks", middleware.WebhookSignature(r.config, r.logger))
	{
		webhooks.POST("/identity", r.webhookHandler.IdentityWebhook)
	}

	apiV1 := e.Group("/api/v1")
	r.registerDeviceRoutes(apiV1)
	r.registerDashboardAPIRoutes(apiV1)

	// Signed-in browser routes
	userGroup := e.Group("/user", r.access.Session)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	dashboard := e.Group("/dashboard", r.access.Session, r.access.RequireAdmin())
	{
		dashboard.GET("/firmware", r.firmwareHandler.ListVersions)
		dashboard.POST("/firmware", r.firmwareHandler.PublishVersion)
		dashboard.POST("/maintenance/reconcile", r.maintenanceHandler.Reconcile)
	}
}

// registerDeviceRoutes registers the routes called by paired devices with the shared key.
func (r *router) registerDeviceRoutes(apiV1 *echo.Group) {
	device := r.access.DeviceKey

	apiV1.POST("/devices", r.deviceHandler.RegisterDevice, device)
	apiV1.GET("/devices/:code", r.deviceHandler.GetDevice, device)
	apiV1.GET("/firmware/latest", r.firmwareHandler.LatestVersion, device)
	apiV1.PATCH("/messages/open/:userCode", r.messageHandler.OpenMessage,
		device, middleware.RateLimit(r.rateLimiter, openMessageScope, "userCode"))
}

// registerDashboardAPIRoutes registers the routes called by the dashboard from its own origin.
func (r *router) registerDashboardAPIRoutes(apiV1 *echo.Group) {
	sameOrigin := r.access.SameOrigin

	devices := apiV1.Group("/devices/:code", sameOrigin)
	{
		devices.PATCH("/mood", r.deviceHandler.SetMood)
		devices.PATCH("/nickname", r.deviceHandler.RenameDevice)
		devices.PATCH("/animation-bundle", r.deviceHandler.AssignAnimationBundle)
	}

	users := apiV1.Group("/users", sameOrigin)
	{
		users.GET("/search", r.userHandler.SearchUsers)
		users.GET("/code/:userCode", r.userHandler.GetByCode)
		users.GET("/code/:userCode/qr", r.userHandler.GetUserCodeQR)
		users.PATCH("/friend-requests/:requesterId/accept", r.socialHandler.AcceptFriendRequest)
		users.GET("/:externalId", r.userHandler.GetByExternalID)
		users.GET("/:externalId/friends", r.userHandler.GetFriends)
		users.PATCH("/:externalId/animation-bundles", r.userHandler.AddAnimationBundle)
		users.PATCH("/:targetId/friend-requests", r.socialHandler.SendFriendRequest)
	}

	messages := apiV1.Group("/messages", sameOrigin)
	{
		messages.POST("", r.messageHandler.SendMessage)
		messages.POST("/conversation", r.messageHandler.GetConversation)
		messages.PATCH("/conversation/read", r.messageHandler.MarkConversationRead)
		messages.GET("/inbox/:userCode", r.messageHandler.GetInbox)
	}
}
