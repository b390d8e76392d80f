package quiz

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateQuizDTO struct {
	Title     string        `json:"title"`
	Questions []QuestionDTO `json:"questions"`
}

type QuestionDTO struct {
	Type    QuestionType    `json:"type"`
	Text    string          `json:"text"`
	Options []string        `json:"options,omitempty"`
	Answer  json.RawMessage `json:"answer"`
}

// NewQuestionDTO renders a typed answer into the submission wire shape.
func NewQuestionDTO(text string, a Answer) QuestionDTO {
	dto := QuestionDTO{Type: a.Type(), Text: text}

	var value interface{}
	switch v := a.(type) {
	case BooleanAnswer:
		value = v.Value
	case InputAnswer:
		value = v.Value
	case CheckboxAnswer:
		dto.Options = nonNil(v.Options)
		value = nonNil(v.Selected)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		raw = []byte("null")
	}
	dto.Answer = raw
	return dto
}

type QuizSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
