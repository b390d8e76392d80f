package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/grading"
	"github.com/saulo-duarte/quiz-api/internal/middlewares"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

type RouterConfig struct {
	QuizHandler    *quiz.Handler
	GradingHandler *grading.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Post("/quizzes/{id}/grade", cfg.GradingHandler.GradeQuiz)

	return r
}
