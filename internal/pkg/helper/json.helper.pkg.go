package helper

import (
	"encoding/json"
	"fmt"
)

func JSONToByte(payload any) ([]byte, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	return jsonBytes, nil
}
