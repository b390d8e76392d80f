package grading

import (
	"encoding/json"
	"fmt"
)

// Answers holds a user's submission keyed by question ID. Values are bool for
// BOOLEAN, string for INPUT, []string for CHECKBOX, or nil when unanswered.
type Answers map[string]interface{}

func (a *Answers) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Answers, len(raw))
	for id, value := range raw {
		v, err := decodeValue(value)
		if err != nil {
			return fmt.Errorf("answer for question %s: %w", id, err)
		}
		out[id] = v
	}
	*a = out
	return nil
}

func decodeValue(raw json.RawMessage) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case nil, bool, string:
		return t, nil
	case []interface{}:
		selected := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported selection %v", item)
			}
			selected = append(selected, s)
		}
		return selected, nil
	default:
		return nil, fmt.Errorf("unsupported answer %v", t)
	}
}
