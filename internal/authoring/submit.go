package authoring

import (
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

// Submit validates the draft and returns the clean payload to send to the API.
// On failure the returned error is a *quiz.ValidationError keyed by
// "title", "questions" or "questions.<index>.<field>".
func Submit(d Draft) (quiz.CreateQuizDTO, error) {
	d = coerceBooleans(d.clone())

	if _, err := quiz.Validate(toDTO(d)); err != nil {
		return quiz.CreateQuizDTO{}, err
	}
	return Clean(d), nil
}

// Clean trims every string of the draft, drops blank CHECKBOX options and
// blank selections. It does not validate.
func Clean(d Draft) quiz.CreateQuizDTO {
	dto := quiz.CreateQuizDTO{
		Title:     strings.TrimSpace(d.Title),
		Questions: make([]quiz.QuestionDTO, 0, len(d.Questions)),
	}

	for _, q := range d.Questions {
		question := quiz.QuestionDTO{
			Type: q.Type,
			Text: strings.TrimSpace(q.Text),
		}

		switch q.Type {
		case quiz.QuestionTypeBoolean:
			question.Answer = marshal(coerceBoolean(q.Answer))
		case quiz.QuestionTypeInput:
			if s, ok := q.Answer.(string); ok {
				question.Answer = marshal(strings.TrimSpace(s))
			} else {
				question.Answer = marshal(q.Answer)
			}
		case quiz.QuestionTypeCheckbox:
			question.Options = nonBlank(q.Options)
			question.Answer = marshal(nonBlank(Selection(q.Answer)))
		default:
			question.Answer = marshal(q.Answer)
		}

		dto.Questions = append(dto.Questions, question)
	}
	return dto
}

// coerceBoolean turns a BOOLEAN draft answer into a bool. Only the strings
// "true" and "True" become true; other values follow ordinary truthiness.
func coerceBoolean(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "True"
	case nil:
		return false
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

func coerceBooleans(d Draft) Draft {
	for i := range d.Questions {
		if d.Questions[i].Type == quiz.QuestionTypeBoolean {
			d.Questions[i].Answer = coerceBoolean(d.Questions[i].Answer)
		}
	}
	return d
}

// toDTO renders the draft as submitted, without trimming.
func toDTO(d Draft) quiz.CreateQuizDTO {
	dto := quiz.CreateQuizDTO{
		Title:     d.Title,
		Questions: make([]quiz.QuestionDTO, 0, len(d.Questions)),
	}
	for _, q := range d.Questions {
		question := quiz.QuestionDTO{Type: q.Type, Text: q.Text}
		if q.Type == quiz.QuestionTypeCheckbox {
			question.Options = append([]string{}, q.Options...)
			question.Answer = marshal(Selection(q.Answer))
		} else {
			question.Answer = marshal(q.Answer)
		}
		dto.Questions = append(dto.Questions, question)
	}
	return dto
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func marshal(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}
