package router

import (
	"askstack/internal/auth"
	"askstack/internal/handlers"
	"askstack/internal/middleware"
	"askstack/internal/store"
	"askstack/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register wires the stores, handlers and route table onto the engine.
// Everything except login/signup sits behind AuthRequired.
func Register(r *gin.Engine, db *gorm.DB, authService *auth.Service, cache *utils.Cache) {
	questionStore := store.NewQuestionStore(db)
	answerStore := store.NewAnswerStore(db)

	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionStore, answerStore, cache)
	userHandler := handlers.NewUserHandler(questionStore)

	r.Use(middleware.LoadUser(db))

	// Public routes
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/signup", authHandler.ShowRegister) // alias
	r.POST("/signup", authHandler.Register)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", questionHandler.List)
		authorized.GET("/logout", authHandler.Logout)

		authorized.GET("/ask", questionHandler.ShowAsk)
		authorized.POST("/ask", questionHandler.Ask)
		authorized.GET("/ask_question", questionHandler.ShowAskQuestion)
		authorized.POST("/ask_question", questionHandler.AskQuestion)

		authorized.GET("/question/:id", questionHandler.Detail)
		authorized.POST("/question/:id", questionHandler.CreateAnswer)
		authorized.GET("/answer/:id", questionHandler.ShowAnswerForm)
		authorized.POST("/answer/:id", questionHandler.SubmitAnswer)

		authorized.GET("/profile", userHandler.Profile)
		authorized.GET("/settings", userHandler.Settings)
	}
}
