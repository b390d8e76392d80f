// Package grading scores user answers against a quiz's stored correct answers.
// Every function here is pure.
package grading

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

type QuestionResult struct {
	QuestionID uuid.UUID   `json:"questionId"`
	Correct    bool        `json:"correct"`
	Given      interface{} `json:"given"`
}

type Result struct {
	Correct   int              `json:"correct"`
	Total     int              `json:"total"`
	Percent   int              `json:"percent"`
	Questions []QuestionResult `json:"questions"`
}

// IsAnswered reports whether given counts as an answer for a question of type t.
func IsAnswered(t quiz.QuestionType, given interface{}) bool {
	switch t {
	case quiz.QuestionTypeCheckbox:
		selected, ok := given.([]string)
		return ok && len(selected) > 0
	case quiz.QuestionTypeBoolean:
		_, ok := given.(bool)
		return ok
	case quiz.QuestionTypeInput:
		s, ok := given.(string)
		return ok && s != ""
	default:
		return false
	}
}

// IsComplete is true when every question of q has an answer.
func IsComplete(q *quiz.Quiz, answers Answers) bool {
	for _, question := range q.Questions {
		if !IsAnswered(question.Type, answers[question.ID.String()]) {
			return false
		}
	}
	return true
}

// Unanswered returns the IDs of questions still missing an answer, in quiz order.
func Unanswered(q *quiz.Quiz, answers Answers) []uuid.UUID {
	var missing []uuid.UUID
	for _, question := range q.Questions {
		if !IsAnswered(question.Type, answers[question.ID.String()]) {
			missing = append(missing, question.ID)
		}
	}
	return missing
}

// IsCorrect compares a user answer with the correct one. A value of the wrong
// Go type never matches.
func IsCorrect(correct quiz.Answer, given interface{}) bool {
	switch c := correct.(type) {
	case quiz.BooleanAnswer:
		b, ok := given.(bool)
		return ok && b == c.Value
	case quiz.InputAnswer:
		s, ok := given.(string)
		return ok && strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(c.Value))
	case quiz.CheckboxAnswer:
		selected, ok := given.([]string)
		if !ok || len(selected) != len(c.Selected) {
			return false
		}
		for _, want := range c.Selected {
			if !contains(selected, want) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Score grades every question of q. It fails only when a stored question
// cannot be decoded.
func Score(q *quiz.Quiz, answers Answers) (*Result, error) {
	result := &Result{
		Total:     len(q.Questions),
		Questions: make([]QuestionResult, 0, len(q.Questions)),
	}

	for _, question := range q.Questions {
		correct, err := question.Body()
		if err != nil {
			return nil, err
		}

		given := answers[question.ID.String()]
		ok := IsCorrect(correct, given)
		if ok {
			result.Correct++
		}
		result.Questions = append(result.Questions, QuestionResult{
			QuestionID: question.ID,
			Correct:    ok,
			Given:      given,
		})
	}

	result.Percent = Percent(result.Correct, result.Total)
	return result, nil
}

func Percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
