package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MinTitleLength = 3

const MinCheckboxOptions = 2

// Validate checks a submission and returns the trimmed quiz ready to persist.
// Any invalid field rejects the whole submission with a *ValidationError.
func Validate(dto CreateQuizDTO) (*Quiz, error) {
	verr := NewValidationError()

	title := strings.TrimSpace(dto.Title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		verr.Add("title", fmt.Sprintf("title must be at least %d characters", MinTitleLength))
	}

	if len(dto.Questions) == 0 {
		verr.Add("questions", "at least one question is required")
	}

	questions := make([]Question, 0, len(dto.Questions))
	for i, q := range dto.Questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			verr.Add(QuestionField(i, "text"), "question text is required")
		}

		answer := validateAnswer(i, q, verr)
		if answer == nil {
			continue
		}

		question, err := NewQuestion(text, answer)
		if err != nil {
			verr.Add(QuestionField(i, "answer"), err.Error())
			continue
		}
		question.Position = i
		questions = append(questions, question)
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Quiz{Title: title, Questions: questions}, nil
}

func validateAnswer(i int, q QuestionDTO, verr *ValidationError) Answer {
	switch q.Type {
	case QuestionTypeBoolean:
		b, ok := decodeBool(q.Answer)
		if !ok {
			verr.Add(QuestionField(i, "answer"), "answer must be true or false")
			return nil
		}
		return BooleanAnswer{Value: b}

	case QuestionTypeInput:
		var s string
		if isNull(q.Answer) || json.Unmarshal(q.Answer, &s) != nil {
			verr.Add(QuestionField(i, "answer"), "enter the correct answer")
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			verr.Add(QuestionField(i, "answer"), "enter the correct answer")
			return nil
		}
		return InputAnswer{Value: s}

	case QuestionTypeCheckbox:
		return validateCheckbox(i, q, verr)

	default:
		verr.Add(QuestionField(i, "type"), fmt.Sprintf("unknown question type %q", q.Type))
		return nil
	}
}

func validateCheckbox(i int, q QuestionDTO, verr *ValidationError) Answer {
	valid := true

	options := make([]string, 0, len(q.Options))
	known := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		opt = strings.TrimSpace(opt)
		options = append(options, opt)
		known[opt] = struct{}{}
	}

	if len(options) < MinCheckboxOptions {
		verr.Add(QuestionField(i, "options"), fmt.Sprintf("add at least %d options", MinCheckboxOptions))
		valid = false
	}
	for _, opt := range options {
		if opt == "" {
			verr.Add(QuestionField(i, "options"), "options must not be empty")
			valid = false
			break
		}
	}

	var raw []string
	if isNull(q.Answer) || json.Unmarshal(q.Answer, &raw) != nil || len(raw) == 0 {
		verr.Add(QuestionField(i, "answer"), "select at least one correct answer")
		return nil
	}

	selected := make([]string, 0, len(raw))
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if _, ok := known[a]; !ok || a == "" {
			verr.Add(QuestionField(i, "answer"), fmt.Sprintf("answer %q is not one of the options", a))
			valid = false
			continue
		}
		selected = append(selected, a)
	}

	if !valid {
		return nil
	}
	return CheckboxAnswer{Options: options, Selected: selected}
}
