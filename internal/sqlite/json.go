package sqlite

import (
	"encoding/json"
	"fmt"
)

// List-valued fields (skills, assigned workers, materials, images) are stored
// as JSON text inside the row, matching the record-per-key layout: a record is
// always read and written wholesale.

func marshalList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list field: %w", err)
	}
	return string(data), nil
}

func unmarshalList(data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decode list field: %w", err)
	}
	return nil
}
