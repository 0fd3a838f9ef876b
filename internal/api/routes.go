package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saxenaaman628/redis-quiz-service/config"
	"github.com/saxenaaman628/redis-quiz-service/internal/controller"
	"github.com/saxenaaman628/redis-quiz-service/internal/middleware"
)

// NewRouter builds the engine with logging and recovery installed.
func NewRouter(store controller.QuizStore, auth config.Auth, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	RegisterRoutes(r, store, auth, log)
	return r
}

func RegisterRoutes(r *gin.Engine, store controller.QuizStore, auth config.Auth, log *zap.Logger) {
	quiz := controller.NewQuizController(store, log)

	r.GET("/", quiz.SeedHandler)
	r.GET("/health", quiz.HealthHandler)
	r.POST("/add-member/:name", quiz.AddMemberHandler)
	r.GET("/members", quiz.ListMembersHandler)
	r.GET("/leaderboard", quiz.LeaderboardHandler)
	r.GET("/question/:id", quiz.GetQuestionHandler)
	r.PATCH("/answer/:question/:name/:answer", quiz.AnswerHandler)

	r.POST("/login", LoginHandler(auth, log))

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(auth.JWTSecret), middleware.RequireAdmin())
	{
		admin.PUT("/questions/:id", quiz.PutQuestionHandler)
		admin.DELETE("/members", quiz.ResetHandler)
	}
}
