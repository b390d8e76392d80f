package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	QuizCreated = "quiz.created"
	QuizDeleted = "quiz.deleted"
)

type QuizEvent struct {
	QuizID        uuid.UUID `json:"quizId"`
	Title         string    `json:"title,omitempty"`
	QuestionCount int       `json:"questionCount,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// Noop drops every event. Used when RABBITMQ_URL is not set.
type Noop struct{}

func (Noop) Publish(context.Context, string, interface{}) error { return nil }

func (Noop) Close() error { return nil }
