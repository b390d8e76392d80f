package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read create quiz body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := ValidateSchema(body); err != nil {
		WriteError(w, log, err)
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for create quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		WriteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		WriteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		WriteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		WriteError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Quiz with ID %s has been deleted", quizID),
	})
}

// WriteError maps quiz errors onto status codes. Unknown errors become a
// generic 500.
func WriteError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	if verr, ok := IsValidationError(err); ok {
		config.JSON(w, http.StatusBadRequest, config.ErrorResponse{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
	case errors.Is(err, ErrQuizNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found")
	default:
		log.WithError(err).Error("Unhandled quiz error")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

