package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events already carry
// the typed struct. Stored or retried events may carry raw JSON bytes or a
// generic map, which are decoded through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case T:
		return v, nil
	case nil:
		return result, fmt.Errorf("%s: nil payload", ErrMsgDecodePayload)
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return nil
}
