package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer is the type-dependent part of a question: its correct answer and,
// for CHECKBOX, the options it is chosen from.
type Answer interface {
	Type() QuestionType
	isAnswer()
}

type BooleanAnswer struct {
	Value bool
}

type InputAnswer struct {
	Value string
}

type CheckboxAnswer struct {
	Options  []string
	Selected []string
}

func (BooleanAnswer) Type() QuestionType  { return QuestionTypeBoolean }
func (InputAnswer) Type() QuestionType    { return QuestionTypeInput }
func (CheckboxAnswer) Type() QuestionType { return QuestionTypeCheckbox }

func (BooleanAnswer) isAnswer()  {}
func (InputAnswer) isAnswer()    {}
func (CheckboxAnswer) isAnswer() {}

// encodeAnswer returns the opaque options and answer columns for a.
// options is nil for every type but CHECKBOX.
func encodeAnswer(a Answer) (options, answer []byte, err error) {
	switch v := a.(type) {
	case BooleanAnswer:
		answer, err = json.Marshal(v.Value)
	case InputAnswer:
		answer, err = json.Marshal(v.Value)
	case CheckboxAnswer:
		if options, err = json.Marshal(nonNil(v.Options)); err != nil {
			return nil, nil, err
		}
		answer, err = json.Marshal(nonNil(v.Selected))
	default:
		err = fmt.Errorf("unsupported answer %T", a)
	}
	return options, answer, err
}

// decodeAnswer rebuilds the typed answer from stored columns. A shape that does
// not fit t is an ErrCorruptQuestion.
func decodeAnswer(t QuestionType, options, answer []byte) (Answer, error) {
	switch t {
	case QuestionTypeBoolean:
		b, ok := decodeBool(answer)
		if !ok {
			return nil, fmt.Errorf("%w: %s answer %s", ErrCorruptQuestion, t, answer)
		}
		return BooleanAnswer{Value: b}, nil
	case QuestionTypeInput:
		var s string
		if isNull(answer) || json.Unmarshal(answer, &s) != nil {
			return nil, fmt.Errorf("%w: %s answer %s", ErrCorruptQuestion, t, answer)
		}
		return InputAnswer{Value: s}, nil
	case QuestionTypeCheckbox:
		var opts, selected []string
		if isNull(options) || json.Unmarshal(options, &opts) != nil {
			return nil, fmt.Errorf("%w: %s options %s", ErrCorruptQuestion, t, options)
		}
		if isNull(answer) || json.Unmarshal(answer, &selected) != nil {
			return nil, fmt.Errorf("%w: %s answer %s", ErrCorruptQuestion, t, answer)
		}
		return CheckboxAnswer{Options: opts, Selected: selected}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrCorruptQuestion, t)
	}
}

// decodeBool accepts only the JSON literals true and false.
func decodeBool(raw []byte) (bool, bool) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
