package quiz

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string { return "quizzes" }

type Question struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	QuizID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position int            `gorm:"not null"`
	Type     QuestionType   `gorm:"type:varchar(16);not null"`
	Text     string         `gorm:"type:text;not null"`
	Options  datatypes.JSON `gorm:"type:jsonb"`
	Answer   datatypes.JSON `gorm:"type:jsonb"`
}

func (Question) TableName() string { return "questions" }

// NewQuestion builds a question row whose type and JSON columns follow a.
func NewQuestion(text string, a Answer) (Question, error) {
	options, answer, err := encodeAnswer(a)
	if err != nil {
		return Question{}, err
	}
	return Question{
		Type:    a.Type(),
		Text:    text,
		Options: datatypes.JSON(options),
		Answer:  datatypes.JSON(answer),
	}, nil
}

// Body decodes the stored options and answer into the typed variant for q.Type.
func (q Question) Body() (Answer, error) {
	a, err := decodeAnswer(q.Type, q.Options, q.Answer)
	if err != nil {
		return nil, fmt.Errorf("question %s: %w", q.ID, err)
	}
	return a, nil
}

type questionWire struct {
	ID      uuid.UUID       `json:"id"`
	Type    QuestionType    `json:"type"`
	Text    string          `json:"text"`
	Options json.RawMessage `json:"options"`
	Answer  json.RawMessage `json:"answer"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(questionWire{
		ID:      q.ID,
		Type:    q.Type,
		Text:    q.Text,
		Options: rawOrNull(q.Options),
		Answer:  rawOrNull(q.Answer),
	})
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	q.ID = w.ID
	q.Type = w.Type
	q.Text = w.Text
	q.Options = nil
	q.Answer = nil
	if !isNull(w.Options) {
		q.Options = datatypes.JSON(w.Options)
	}
	if !isNull(w.Answer) {
		q.Answer = datatypes.JSON(w.Answer)
	}
	return nil
}

func rawOrNull(j datatypes.JSON) json.RawMessage {
	if isNull(j) {
		return json.RawMessage("null")
	}
	return json.RawMessage(j)
}
