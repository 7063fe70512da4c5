package repository

import (
	"encoding/json"
	"strings"
)

// CleanJSONContent strips surrounding whitespace and markdown code fences
// from a model reply.
func CleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	content = strings.Trim(content, "`json\n`")
	return strings.TrimSpace(content)
}

// ParseJSONObject decodes a model reply into a generic mapping. Malformed
// or empty content yields an empty map, never an error, so every caller
// can apply its fallback uniformly.
func ParseJSONObject(content string) map[string]json.RawMessage {
	cleaned := CleanJSONContent(content)
	if cleaned == "" {
		return map[string]json.RawMessage{}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil || obj == nil {
		return map[string]json.RawMessage{}
	}
	return obj
}

// DecodeStagePayload decodes a model reply into the stage's typed struct.
// It reports false when the reply is malformed or an empty object, in which
// case the caller substitutes the stage fallback. An empty object is
// deliberately indistinguishable from a decode failure.
func DecodeStagePayload(content string, v interface{}) bool {
	obj := ParseJSONObject(content)
	if len(obj) == 0 {
		return false
	}
	return json.Unmarshal([]byte(CleanJSONContent(content)), v) == nil
}
