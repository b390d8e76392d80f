package grading

import "github.com/saulo-duarte/quiz-api/internal/quiz"

type GradingContainer struct {
	Handler *Handler
}

func NewGradingContainer(quizzes quiz.QuizService) *GradingContainer {
	return &GradingContainer{
		Handler: NewHandler(quizzes),
	}
}
