package validation

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

// PitchSchema defines the JSON schema for pitch responses from the model.
var PitchSchema = `{
	"type": "object",
	"properties": {
		"pitches": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"pitch": {"type": "string", "minLength": 1, "maxLength": 280}
				},
				"required": ["id", "pitch"],
				"additionalProperties": false
			},
			"minItems": 0,
			"maxItems": 50
		}
	},
	"required": ["pitches"],
	"additionalProperties": false
}`

var pitchSchemaLoader = gojsonschema.NewStringLoader(PitchSchema)

// PitchItem is one generated pitch, keyed by game id.
type PitchItem struct {
	ID    int64  `json:"id"`
	Pitch string `json:"pitch"`
}

// PitchResponse represents the complete response from the model.
type PitchResponse struct {
	Pitches []PitchItem `json:"pitches"`
}

// ValidatePitchResponse validates a JSON response against the pitch schema.
func ValidatePitchResponse(jsonData []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(jsonData)

	result, err := gojsonschema.Validate(pitchSchemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate JSON schema: %w", err)
	}

	if !result.Valid() {
		var errorMessages []string
		for _, desc := range result.Errors() {
			errorMessages = append(errorMessages, desc.String())
		}
		return fmt.Errorf("JSON validation failed: %s", strings.Join(errorMessages, "; "))
	}

	return nil
}

// ValidateAndParsePitchResponse validates, parses and sanitizes a response.
func ValidateAndParsePitchResponse(jsonData []byte) (*PitchResponse, error) {
	if err := ValidatePitchResponse(jsonData); err != nil {
		return nil, err
	}

	var response PitchResponse
	if err := json.Unmarshal(jsonData, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	SanitizePitchResponse(&response)
	return &response, nil
}

// SanitizePitchResponse trims pitches and drops blank or duplicate entries.
// The first pitch for an id wins.
func SanitizePitchResponse(response *PitchResponse) {
	seen := make(map[int64]bool, len(response.Pitches))
	clean := make([]PitchItem, 0, len(response.Pitches))
	for _, p := range response.Pitches {
		p.Pitch = strings.TrimSpace(p.Pitch)
		if p.Pitch == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		clean = append(clean, p)
	}
	response.Pitches = clean
}
