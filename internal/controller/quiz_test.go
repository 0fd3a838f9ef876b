package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
	redishandler "github.com/saxenaaman628/redis-quiz-service/internal/redisHandler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore returns err from every call and member from SubmitAnswer.
type fakeStore struct {
	err    error
	member *models.Member
}

func (f *fakeStore) Ping(context.Context) error { return f.err }
func (f *fakeStore) Seed(context.Context) error { return f.err }
func (f *fakeStore) PutQuestion(context.Context, models.Question) error { return f.err }
func (f *fakeStore) GetQuestion(_ context.Context, id int) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Question{ID: id, Text: "text"}, nil
}
func (f *fakeStore) AddMember(context.Context, string) error { return f.err }
func (f *fakeStore) ListMembers(context.Context) ([]models.Member, error) {
	return []models.Member{}, f.err
}
func (f *fakeStore) Leaderboard(context.Context, int) ([]models.Member, error) {
	return []models.Member{}, f.err
}
func (f *fakeStore) SubmitAnswer(context.Context, string, string, string) (*models.Member, error) {
	return f.member, f.err
}
func (f *fakeStore) Reset(context.Context) (int64, error) { return 0, f.err }

func newEngine(store QuizStore) *gin.Engine {
	qc := NewQuizController(store, zap.NewNop())
	r := gin.New()
	r.GET("/question/:id", qc.GetQuestionHandler)
	r.PATCH("/answer/:question/:name/:answer", qc.AnswerHandler)
	r.GET("/members", qc.ListMembersHandler)
	r.DELETE("/admin/members", qc.ResetHandler)
	return r
}

func TestAnswerHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		store      *fakeStore
		wantStatus int
		wantBody   string
	}{
		{"success", &fakeStore{member: &models.Member{Name: "Alice", Score: 3}}, http.StatusOK, "Correct! Alice now has 3 points."},
		{"incorrect", &fakeStore{err: redishandler.ErrIncorrectAnswer}, http.StatusBadRequest, "Incorrect answer for Alice."},
		{"already answered", &fakeStore{err: redishandler.ErrAlreadyAnswered}, http.StatusBadRequest, "Alice has already answered this question."},
		{"player missing", &fakeStore{err: redishandler.ErrPlayerNotFound}, http.StatusNotFound, "Player Alice not found."},
		{"question missing", &fakeStore{err: redishandler.ErrQuestionNotFound}, http.StatusNotFound, "Question 1 not found."},
		{"store down", &fakeStore{err: errors.New("connection refused")}, http.StatusInternalServerError, `{"error":"Failed to record answer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", "/answer/1/Alice/yes", nil)
			w := httptest.NewRecorder()

			newEngine(tt.store).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("Expected body '%s', got '%s'", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetQuestionHandlerWrappedNotFound(t *testing.T) {
	store := &fakeStore{err: errors.Join(errors.New("lookup"), redishandler.ErrQuestionNotFound)}

	req := httptest.NewRequest("GET", "/question/4", nil)
	w := httptest.NewRecorder()
	newEngine(store).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w.Body.String() != "Question 4 not found." {
		t.Errorf("Unexpected body '%s'", w.Body.String())
	}
}

func TestInternalErrors(t *testing.T) {
	r := newEngine(&fakeStore{err: errors.New("boom")})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/members"},
		{"GET", "/question/1"},
		{"DELETE", "/admin/members"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: expected status 500, got %d", tc.method, tc.path, w.Code)
		}
	}
}
