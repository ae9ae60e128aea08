// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cinematch/internal/delivery/api/middleware"
	"cinematch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	QuizHandler           *handler.QuizHandler
	RecommendationHandler *handler.RecommendationHandler
	SessionMiddleware     *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	quizHandler           *handler.QuizHandler
	recommendationHandler *handler.RecommendationHandler
	sessionMiddleware     *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		userHandler:           params.UserHandler,
		quizHandler:           params.QuizHandler,
		recommendationHandler: params.RecommendationHandler,
		sessionMiddleware:     params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Everything under /api/v1 needs a session.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate)

	apiV1.GET("/me", r.userHandler.Me)

	quizGroup := apiV1.Group("/quiz")
	{
		quizGroup.GET("", r.quizHandler.GetQuiz)
		quizGroup.PUT("", r.quizHandler.SubmitQuiz)
	}

	recommendationsGroup := apiV1.Group("/recommendations")
	{
		recommendationsGroup.POST("", r.recommendationHandler.RecommendFilms)
		recommendationsGroup.POST("/local", r.recommendationHandler.RecommendLocalFilms)
	}
}
