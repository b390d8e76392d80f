package grading

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

const maxBodyBytes = 1 << 20

type GradeRequest struct {
	Answers Answers `json:"answers"`
}

type Handler struct {
	quizzes quiz.QuizService
}

func NewHandler(quizzes quiz.QuizService) *Handler {
	return &Handler{quizzes: quizzes}
}

func (h *Handler) GradeQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz id required")
		return
	}

	var req GradeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for grade quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qz, err := h.quizzes.GetQuiz(r.Context(), quizID)
	if err != nil {
		quiz.WriteError(w, log, err)
		return
	}

	if missing := Unanswered(qz, req.Answers); len(missing) > 0 {
		fields := make(map[string]string, len(missing))
		for _, id := range missing {
			fields[id.String()] = "answer is required"
		}
		config.JSON(w, http.StatusUnprocessableEntity, config.ErrorResponse{
			Error:  "all questions must be answered",
			Fields: fields,
		})
		return
	}

	result, err := Score(qz, req.Answers)
	if err != nil {
		log.WithError(err).WithField("quiz_id", quizID).Error("Failed to grade quiz")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.WithField("quiz_id", quizID).Infof("Quiz graded: %d/%d", result.Correct, result.Total)
	config.JSON(w, http.StatusOK, result)
}
