package helper

import (
	"encoding/json"
)

// JSONToStruct re-marshals an untyped payload (usually a decoded
// map[string]any) into a typed struct.
func JSONToStruct[I any](payload any) (result *I, err error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(jsonBytes, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}
