package model

import "fmt"

type VoiceTone string

const (
	ToneFormal    VoiceTone = "formal"
	ToneFriendly  VoiceTone = "friendly"
	ToneConfident VoiceTone = "confident"
	ToneHumble    VoiceTone = "humble"
)

type AnswerLength string

const (
	LengthShort  AnswerLength = "short"
	LengthMedium AnswerLength = "medium"
	LengthLong   AnswerLength = "long"
)

type Personality string

const (
	PersonalityTechnical    Personality = "technical"
	PersonalityStorytelling Personality = "storytelling"
	PersonalityBalanced     Personality = "balanced"
)

var (
	VoiceTones    = []VoiceTone{ToneFormal, ToneFriendly, ToneConfident, ToneHumble}
	AnswerLengths = []AnswerLength{LengthShort, LengthMedium, LengthLong}
	Personalities = []Personality{PersonalityTechnical, PersonalityStorytelling, PersonalityBalanced}
)

type StylePreferences struct {
	VoiceTone   VoiceTone    `json:"voice_tone" validate:"omitempty,oneof=formal friendly confident humble"`
	Length      AnswerLength `json:"length" validate:"omitempty,oneof=short medium long"`
	Personality Personality  `json:"personality" validate:"omitempty,oneof=technical storytelling balanced"`
}

// DefaultStyle is the style used when the client sends none.
func DefaultStyle() StylePreferences {
	return StylePreferences{
		VoiceTone:   ToneConfident,
		Length:      LengthMedium,
		Personality: PersonalityBalanced,
	}
}

// WithDefaults fills empty choices with their defaults. Unknown values are
// left untouched so that Validate can reject them.
func (s StylePreferences) WithDefaults() StylePreferences {
	d := DefaultStyle()
	if s.VoiceTone == "" {
		s.VoiceTone = d.VoiceTone
	}
	if s.Length == "" {
		s.Length = d.Length
	}
	if s.Personality == "" {
		s.Personality = d.Personality
	}
	return s
}

func (s StylePreferences) Validate() error {
	if !contains(VoiceTones, s.VoiceTone) {
		return fmt.Errorf("unknown voice_tone %q", s.VoiceTone)
	}
	if !contains(AnswerLengths, s.Length) {
		return fmt.Errorf("unknown length %q", s.Length)
	}
	if !contains(Personalities, s.Personality) {
		return fmt.Errorf("unknown personality %q", s.Personality)
	}
	return nil
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
