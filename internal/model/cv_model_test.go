package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() CandidateRecord {
	return CandidateRecord{
		Name:        "Ada Lovelace",
		FirstName:   Ptr("Ada"),
		LastName:    nil,
		Email:       Ptr("ada@example.com"),
		Phone:       Ptr("+44 20 0000 0000"),
		LinkedInURL: Ptr("https://linkedin.com/in/ada"),
		Website:     Ptr(""),
		Country:     Ptr("United Kingdom"),
		Summary:     "Analyst and writer.",
		Experience: []Experience{
			{Company: "Analytical Engines Ltd", Role: "Programmer", Duration: Ptr("1842-1843"), Achievements: []string{"Wrote the first program"}},
			{Company: "Royal Society", Role: "Translator", Achievements: []string{}},
		},
		Skills:    []string{"Mathematics", "Notes"},
		Projects:  []Project{{Name: "Note G", Description: "Bernoulli numbers", Technologies: []string{}}},
		Education: []string{"Private tutoring"},
	}
}

func TestCandidateRecordRoundTrip(t *testing.T) {
	original := fullRecord()

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeCandidate(raw, Strict)
	require.NoError(t, err)
	assert.Equal(t, original, *decoded)

	var plain CandidateRecord
	require.NoError(t, json.Unmarshal(raw, &plain))
	assert.Equal(t, original, plain)
}

func TestCandidateRecordMarshalsEmptyListsAndNulls(t *testing.T) {
	record := CandidateRecord{Name: "Solo"}
	record.Normalize()

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Solo", "first_name": null, "last_name": null, "email": null,
		"phone": null, "linkedin_url": null, "website": null, "country": null,
		"summary": "", "experience": [], "skills": [], "projects": [], "education": []
	}`, string(raw))
}

func TestNameParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		record    CandidateRecord
		wantFirst string
		wantLast  string
	}{
		{name: "split full name", record: CandidateRecord{Name: "Grace Brewster Hopper"}, wantFirst: "Grace", wantLast: "Hopper"},
		{name: "single token has no last name", record: CandidateRecord{Name: "Cher"}, wantFirst: "Cher"},
		{name: "surrounding whitespace", record: CandidateRecord{Name: "  Alan   Turing "}, wantFirst: "Alan", wantLast: "Turing"},
		{name: "empty name", record: CandidateRecord{Name: "   "}},
		{name: "explicit values win", record: CandidateRecord{Name: "A B", FirstName: Ptr("Anna"), LastName: Ptr("Bell")}, wantFirst: "Anna", wantLast: "Bell"},
		{name: "explicit first only", record: CandidateRecord{Name: "A B", FirstName: Ptr("Anna")}, wantFirst: "Anna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first, last := tt.record.NameParts()
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
