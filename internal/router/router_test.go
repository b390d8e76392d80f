package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quiz-api/internal/grading"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/saulo-duarte/quiz-api/internal/router"
	"github.com/stretchr/testify/assert"
)

type emptyService struct{}

func (emptyService) CreateQuiz(context.Context, quiz.CreateQuizDTO) (*quiz.Quiz, error) {
	return nil, quiz.ErrInvalidID
}

func (emptyService) ListQuizzes(context.Context) ([]quiz.QuizSummary, error) {
	return []quiz.QuizSummary{}, nil
}

func (emptyService) GetQuiz(context.Context, string) (*quiz.Quiz, error) {
	return nil, quiz.ErrQuizNotFound
}

func (emptyService) DeleteQuiz(context.Context, string) error {
	return quiz.ErrQuizNotFound
}

func TestRoutes(t *testing.T) {
	h := router.New(router.RouterConfig{
		QuizHandler:    quiz.NewHandler(emptyService{}),
		GradingHandler: grading.NewHandler(emptyService{}),
		AllowedOrigins: []string{"https://quiz.example"},
	})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{method: http.MethodGet, path: "/health", status: http.StatusOK},
		{method: http.MethodGet, path: "/quizzes", status: http.StatusOK},
		{method: http.MethodGet, path: "/quizzes/6f1d2c1e-5b0a-4c7e-9a55-2f3b1d7c9e10", status: http.StatusNotFound},
		{method: http.MethodDelete, path: "/quizzes/6f1d2c1e-5b0a-4c7e-9a55-2f3b1d7c9e10", status: http.StatusNotFound},
		{method: http.MethodPost, path: "/quizzes/6f1d2c1e-5b0a-4c7e-9a55-2f3b1d7c9e10/grade", body: `{"answers":{}}`, status: http.StatusNotFound},
		{method: http.MethodPut, path: "/quizzes/6f1d2c1e-5b0a-4c7e-9a55-2f3b1d7c9e10", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	h := router.New(router.RouterConfig{
		QuizHandler:    quiz.NewHandler(emptyService{}),
		GradingHandler: grading.NewHandler(emptyService{}),
		AllowedOrigins: []string{"https://quiz.example"},
	})

	req := httptest.NewRequest(http.MethodGet, "/quizzes", nil)
	req.Header.Set("Origin", "https://quiz.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://quiz.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
