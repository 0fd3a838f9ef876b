package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
)

type putQuestionInput struct {
	Text       string `json:"text" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	TTLSeconds int    `json:"ttl_seconds" binding:"required,min=1"`
}

func (qc *QuizController) PutQuestionHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question id must be a positive integer"})
		return
	}

	var input putQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := models.Question{
		ID:     id,
		Text:   input.Text,
		Answer: input.Answer,
		TTL:    time.Duration(input.TTLSeconds) * time.Second,
	}
	if err := qc.store.PutQuestion(c.Request.Context(), q); err != nil {
		qc.internalError(c, "Failed to save question", err)
		return
	}

	qc.log.Info("question saved",
		zap.Int("id", id),
		zap.String("by", c.GetString("username")),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Question saved", "id": id})
}

func (qc *QuizController) ResetHandler(c *gin.Context) {
	removed, err := qc.store.Reset(c.Request.Context())
	if err != nil {
		qc.internalError(c, "Failed to reset quiz state", err)
		return
	}

	qc.log.Info("quiz state reset",
		zap.Int64("removed_keys", removed),
		zap.String("by", c.GetString("username")),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Quiz state reset", "removed_keys": removed})
}
