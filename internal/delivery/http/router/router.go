// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	QuestionHandler  *handler.QuestionHandler
	TutorialHandler  *handler.TutorialHandler
	ChallengeHandler *handler.ChallengeHandler
	CourseHandler    *handler.CourseHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	questionHandler  *handler.QuestionHandler
	tutorialHandler  *handler.TutorialHandler
	challengeHandler *handler.ChallengeHandler
	courseHandler    *handler.CourseHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		questionHandler:  params.QuestionHandler,
		tutorialHandler:  params.TutorialHandler,
		challengeHandler: params.ChallengeHandler,
		courseHandler:    params.CourseHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation goes through the Authenticate middleware.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/:provider", r.authHandler.OAuthLogin)
	}

	// Q&A board
	questionGroup := e.Group("/questions")
	{
		questionGroup.GET("", r.questionHandler.ListQuestions)
		questionGroup.GET("/:id", r.questionHandler.GetQuestion)
		questionGroup.POST("", r.questionHandler.CreateQuestion, auth)
		questionGroup.PUT("/:id", r.questionHandler.UpdateQuestion, auth)
		questionGroup.DELETE("/:id", r.questionHandler.DeleteQuestion, auth)

		questionGroup.GET("/:id/answers", r.questionHandler.ListAnswers)
		questionGroup.POST("/:id/answers", r.questionHandler.CreateAnswer, auth)
	}

	answerGroup := e.Group("/answers")
	{
		answerGroup.PUT("/:id", r.questionHandler.UpdateAnswer, auth)
		answerGroup.DELETE("/:id", r.questionHandler.DeleteAnswer, auth)
	}

	// Tutorials
	tutorialGroup := e.Group("/tutorials")
	{
		tutorialGroup.GET("", r.tutorialHandler.ListTutorials)
		tutorialGroup.GET("/:id", r.tutorialHandler.GetTutorial)
		tutorialGroup.POST("", r.tutorialHandler.CreateTutorial, auth)
		tutorialGroup.PUT("/:id", r.tutorialHandler.UpdateTutorial, auth)
		tutorialGroup.DELETE("/:id", r.tutorialHandler.DeleteTutorial, auth)
	}

	// Challenges and their comments
	challengeGroup := e.Group("/challenges")
	{
		challengeGroup.GET("", r.challengeHandler.ListChallenges)
		challengeGroup.GET("/:id", r.challengeHandler.GetChallenge)
		challengeGroup.POST("", r.challengeHandler.CreateChallenge, auth)
		challengeGroup.DELETE("/:id", r.challengeHandler.DeleteChallenge, auth)

		challengeGroup.GET("/:id/comments", r.challengeHandler.ListComments)
		challengeGroup.POST("/:id/comments", r.challengeHandler.CreateComment, auth)
	}

	commentGroup := e.Group("/comments")
	{
		commentGroup.PUT("/:id", r.challengeHandler.UpdateComment, auth)
		commentGroup.DELETE("/:id", r.challengeHandler.DeleteComment, auth)
	}

	// Courses and their lessons
	courseGroup := e.Group("/courses")
	{
		courseGroup.GET("", r.courseHandler.ListCourses)
		courseGroup.GET("/:id", r.courseHandler.GetCourse)
		courseGroup.POST("", r.courseHandler.CreateCourse, auth)
		courseGroup.PUT("/:id", r.courseHandler.UpdateCourse, auth)
		courseGroup.DELETE("/:id", r.courseHandler.DeleteCourse, auth)

		courseGroup.GET("/:id/lessons", r.courseHandler.ListLessons)
		courseGroup.POST("/:id/lessons", r.courseHandler.CreateLesson, auth)
	}

	lessonGroup := e.Group("/lessons")
	{
		lessonGroup.GET("/:id", r.courseHandler.GetLesson)
		lessonGroup.PUT("/:id", r.courseHandler.UpdateLesson, auth)
		lessonGroup.DELETE("/:id", r.courseHandler.DeleteLesson, auth)
	}
}
