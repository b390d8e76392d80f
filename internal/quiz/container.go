package quiz

import (
	"time"

	"github.com/saulo-duarte/quiz-api/internal/cache"
	"github.com/saulo-duarte/quiz-api/internal/events"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB, c cache.Cache, publisher events.Publisher, cacheTTL time.Duration) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, c, publisher, cacheTTL)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
