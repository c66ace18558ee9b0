package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/fadilmartias/submitme/internal/prompt"
)

// StyleInstructions joins the tone, length and personality sentences for
// style. Empty choices take their defaults; a value missing from the table is
// a configuration error.
func StyleInstructions(table prompt.StyleTable, style model.StylePreferences) (string, error) {
	style = style.WithDefaults()

	tone, ok := table.Tone[style.VoiceTone]
	if !ok {
		return "", &model.ConfigError{Key: "style.tone", Err: fmt.Errorf("no instruction for %q", style.VoiceTone)}
	}
	length, ok := table.Length[style.Length]
	if !ok {
		return "", &model.ConfigError{Key: "style.length", Err: fmt.Errorf("no instruction for %q", style.Length)}
	}
	personality, ok := table.Personality[style.Personality]
	if !ok {
		return "", &model.ConfigError{Key: "style.personality", Err: fmt.Errorf("no instruction for %q", style.Personality)}
	}

	return strings.Join([]string{tone, length, personality}, " "), nil
}
