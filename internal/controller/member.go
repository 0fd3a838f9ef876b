package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 10

func (qc *QuizController) AddMemberHandler(c *gin.Context) {
	name := c.Param("name")

	if err := qc.store.AddMember(c.Request.Context(), name); err != nil {
		qc.internalError(c, "Failed to add member", err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Member %s added", name))
}

func (qc *QuizController) ListMembersHandler(c *gin.Context) {
	members, err := qc.store.ListMembers(c.Request.Context())
	if err != nil {
		qc.internalError(c, "Failed to fetch members", err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (qc *QuizController) LeaderboardHandler(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	members, err := qc.store.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		qc.internalError(c, "Failed to build leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, members)
}
