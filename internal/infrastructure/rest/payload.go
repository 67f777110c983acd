package rest

import (
	"encoding/json"
	"fmt"
)

// MarshalClean marshals v to JSON with all null-valued top-level fields
// stripped from the payload. Mutation requests send only the fields that are
// actually set, so the backend's partial-update semantics see absent fields,
// not explicit nulls.
func MarshalClean(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to encode payload: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("rest: failed to re-decode payload: %w", err)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		// Arrays and scalars pass through untouched
		return raw, nil
	}

	for key, value := range obj {
		if value == nil {
			delete(obj, key)
		}
	}

	cleaned, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to encode cleaned payload: %w", err)
	}
	return cleaned, nil
}
