package main

import (
	"encoding/json"
	"fmt"
)

// parseJobPath extracts the input-file path from a Sidekiq payload argument
// that may be encoded either as a plain JSON string or as an object with a
// "path" (or legacy "file") key.
func parseJobPath(raw json.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return "", fmt.Errorf("empty path")
		}
		return asString, nil
	}

	var asObject struct {
		Path string `json:"path"`
		File string `json:"file"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if asObject.Path != "" {
			return asObject.Path, nil
		}
		if asObject.File != "" {
			return asObject.File, nil
		}
		return "", fmt.Errorf("missing path key")
	}

	return "", fmt.Errorf("unsupported arg: %s", string(raw))
}
