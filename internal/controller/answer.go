package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	redishandler "github.com/saxenaaman628/redis-quiz-service/internal/redisHandler"
)

func (qc *QuizController) AnswerHandler(c *gin.Context) {
	questionID := c.Param("question")
	name := c.Param("name")
	answer := c.Param("answer")

	member, err := qc.store.SubmitAnswer(c.Request.Context(), questionID, name, answer)
	switch {
	case err == nil:
		c.String(http.StatusOK, fmt.Sprintf("Correct! %s now has %d points.", name, member.Score))
	case errors.Is(err, redishandler.ErrIncorrectAnswer):
		c.String(http.StatusBadRequest, fmt.Sprintf("Incorrect answer for %s.", name))
	case errors.Is(err, redishandler.ErrAlreadyAnswered):
		c.String(http.StatusBadRequest, fmt.Sprintf("%s has already answered this question.", name))
	case errors.Is(err, redishandler.ErrPlayerNotFound):
		c.String(http.StatusNotFound, fmt.Sprintf("Player %s not found.", name))
	case errors.Is(err, redishandler.ErrQuestionNotFound):
		c.String(http.StatusNotFound, fmt.Sprintf("Question %s not found.", questionID))
	default:
		qc.internalError(c, "Failed to record answer", err)
	}
}
