// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"
)

// Rate-limited operation names.
const (
	opCreateAccount   = "account.create"
	opCreateSession   = "session.create"
	opCreateChallenge = "challenge.create"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	SessionHandler   *handler.SessionHandler
	ChallengeHandler *handler.ChallengeHandler
	OAuthHandler     *handler.OAuthHandler
	TargetHandler    *handler.TargetHandler
	LogsHandler      *handler.LogsHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.params.AuthMiddleware.Authenticate
	resolve := r.params.AuthMiddleware.Resolve
	rate := r.params.RateLimitMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	account := v1.Group("/account")
	{
		// Registration is the only unauthenticated account route; invites
		// never work from the public surface.
		account.POST("", r.params.AccountHandler.Create, rate.Count(opCreateAccount))
		account.POST("/invite", r.params.AccountHandler.Invite)

		account.GET("", r.params.AccountHandler.Get, authn)
		account.PATCH("/email", r.params.AccountHandler.UpdateEmail, authn)
		account.PATCH("/password", r.params.AccountHandler.UpdatePassword, authn)
		account.PATCH("/phone", r.params.AccountHandler.UpdatePhone, authn)
		account.PATCH("/name", r.params.AccountHandler.UpdateName, authn)
		account.PATCH("/status", r.params.AccountHandler.BlockSelf, authn)

		account.POST("/jwt", r.params.SessionHandler.IssueJWT, authn)

		sessions := account.Group("/sessions")
		{
			// Anonymous creation resolves an existing credential to reject
			// callers that already hold a session; the OAuth2 callback
			// resolves it to upgrade anonymous accounts in place.
			sessions.POST("/email", r.params.SessionHandler.CreateEmail, rate.Count(opCreateSession))
			sessions.POST("/anonymous", r.params.SessionHandler.CreateAnonymous, resolve, rate.Count(opCreateSession))
			sessions.POST("/phone", r.params.ChallengeHandler.CreatePhoneSession, rate.Count(opCreateChallenge))
			sessions.PUT("/phone", r.params.ChallengeHandler.ConfirmPhoneSession, rate.Count(opCreateSession))

			sessions.GET("/oauth2/:provider", r.params.OAuthHandler.Begin)
			sessions.GET("/oauth2/callback/:provider", r.params.OAuthHandler.Callback, resolve, rate.Count(opCreateSession))

			sessions.GET("", r.params.SessionHandler.List, authn)
			sessions.GET("/:sessionID", r.params.SessionHandler.Get, authn)
			sessions.PATCH("/:sessionID", r.params.OAuthHandler.RefreshTokens, authn)
			sessions.DELETE("/:sessionID", r.params.SessionHandler.Delete, authn)
		}

		verification := account.Group("/verification", authn, rate.Count(opCreateChallenge))
		{
			verification.POST("", r.params.ChallengeHandler.CreateEmailVerification)
			verification.PUT("", r.params.ChallengeHandler.ConfirmEmailVerification)
			verification.POST("/phone", r.params.ChallengeHandler.CreatePhoneVerification)
			verification.PUT("/phone", r.params.ChallengeHandler.ConfirmPhoneVerification)
		}

		targets := account.Group("/targets", authn)
		{
			targets.POST("", r.params.TargetHandler.Create)
			targets.GET("", r.params.TargetHandler.List)
			targets.GET("/:targetID", r.params.TargetHandler.Get)
			targets.PATCH("/:targetID", r.params.TargetHandler.Update)
			targets.DELETE("/:targetID", r.params.TargetHandler.Delete)
		}

		account.GET("/logs", r.params.LogsHandler.List, authn)
	}

	// Admin routes authenticate with the project API key, not a session.
	admin := v1.Group("/admin", r.params.AuthMiddleware.RequireAdmin)
	{
		admin.PATCH("/accounts/:accountID/status", r.params.AccountHandler.SetStatus)
	}
}
