package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
	redishandler "github.com/saxenaaman628/redis-quiz-service/internal/redisHandler"
)

// QuizStore is the storage the quiz handlers need.
type QuizStore interface {
	Ping(ctx context.Context) error
	Seed(ctx context.Context) error
	PutQuestion(ctx context.Context, q models.Question) error
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	AddMember(ctx context.Context, name string) error
	ListMembers(ctx context.Context) ([]models.Member, error)
	Leaderboard(ctx context.Context, limit int) ([]models.Member, error)
	SubmitAnswer(ctx context.Context, questionID, name, answer string) (*models.Member, error)
	Reset(ctx context.Context) (int64, error)
}

type QuizController struct {
	store QuizStore
	log   *zap.Logger
}

func NewQuizController(store QuizStore, log *zap.Logger) *QuizController {
	return &QuizController{store: store, log: log}
}

// internalError logs err and answers with a generic 500.
func (qc *QuizController) internalError(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	qc.log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func (qc *QuizController) HealthHandler(c *gin.Context) {
	if err := qc.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Redis unavailable"})
		return
	}
	c.String(http.StatusOK, "OK")
}

func (qc *QuizController) SeedHandler(c *gin.Context) {
	if err := qc.store.Seed(c.Request.Context()); err != nil {
		qc.internalError(c, "Failed to seed questions", err)
		return
	}
	c.String(http.StatusOK, "Hello World. Pre-setup was successfully completed")
}

func (qc *QuizController) GetQuestionHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Question id must be an integer.")
		return
	}

	q, err := qc.store.GetQuestion(c.Request.Context(), id)
	if errors.Is(err, redishandler.ErrQuestionNotFound) {
		c.String(http.StatusNotFound, fmt.Sprintf("Question %d not found.", id))
		return
	}
	if err != nil {
		qc.internalError(c, "Failed to fetch question", err)
		return
	}

	c.String(http.StatusOK, q.Text)
}
