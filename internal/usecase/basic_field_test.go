package usecase

import (
	"testing"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerBasicField(t *testing.T) {
	record := fullRecord()

	cases := []struct {
		question string
		want     string
	}{
		{"First Name", "Jane"},
		{"Last name *", "Doe"},
		{"Surname", "Doe"},
		{"Family name", "Doe"},
		{"Full name", "Jane Q Doe"},
		{"What is your name?", "Jane Q Doe"},
		{"  Name ", "Jane Q Doe"},
		{"Email address", "jane@example.com"},
		{"E-mail", "jane@example.com"},
		{"Phone number", "+44 20 7946 0000"},
		{"Mobile", "+44 20 7946 0000"},
		{"Contact number", "+44 20 7946 0000"},
		{"LinkedIn profile URL", "https://linkedin.com/in/janedoe"},
		{"Personal website", "https://jane.dev"},
		{"Portfolio link", "https://jane.dev"},
		{"Country of residence", "United Kingdom"},
		{"Current location", "United Kingdom"},
	}
	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			result, ok := AnswerBasicField(tc.question, record)
			require.True(t, ok)
			assert.Equal(t, tc.want, result.Answer)
			assert.Equal(t, model.QuestionBasicInfo, result.QuestionType)
		})
	}
}

func TestAnswerBasicFieldFirstMatchWins(t *testing.T) {
	// "first name" is checked before "email".
	result, ok := AnswerBasicField("First name (as on your email)", fullRecord())
	require.True(t, ok)
	assert.Equal(t, "Jane", result.Answer)
}

func TestAnswerBasicFieldPrefersExplicitNameParts(t *testing.T) {
	record := fullRecord()
	record.FirstName = model.Ptr("J.")
	record.LastName = model.Ptr("Doe-Smith")

	first, _ := AnswerBasicField("first name", record)
	last, _ := AnswerBasicField("last name", record)
	assert.Equal(t, "J.", first.Answer)
	assert.Equal(t, "Doe-Smith", last.Answer)
}

func TestAnswerBasicFieldSkipsMissingValues(t *testing.T) {
	record := minimalRecord("Prince")

	for _, q := range []string{"Last name", "Email", "Phone", "LinkedIn", "Country"} {
		_, ok := AnswerBasicField(q, record)
		assert.False(t, ok, q)
	}
}

func TestAnswerBasicFieldMissingWebsiteAnswersEmpty(t *testing.T) {
	result, ok := AnswerBasicField("Website", minimalRecord("Ada Lovelace"))
	require.True(t, ok)
	assert.Equal(t, "", result.Answer)
	assert.Equal(t, model.QuestionBasicInfo, result.QuestionType)
}

func TestAnswerBasicFieldIgnoresOtherQuestions(t *testing.T) {
	for _, q := range []string{"Why do you want to join us?", "Describe a difficult bug you fixed"} {
		_, ok := AnswerBasicField(q, fullRecord())
		assert.False(t, ok, q)
	}
}

func TestCountryWithOptions(t *testing.T) {
	record := fullRecord()

	result, ok := AnswerBasicField("Country? Options: USA, Canada, UK", record)
	require.True(t, ok)
	assert.Equal(t, "UK", result.Answer)

	record.Country = model.Ptr("USA")
	result, ok = AnswerBasicField("Country [France, Germany]", record)
	require.True(t, ok)
	assert.Equal(t, "", result.Answer)
}

func TestMatchCountryOption(t *testing.T) {
	cases := []struct {
		name    string
		country string
		options []string
		want    string
	}{
		{"exact beats substring", "India", []string{"British Indian Ocean Territory", "india"}, "india"},
		{"option inside country", "United States of America", []string{"Canada", "United States"}, "United States"},
		{"country inside option", "Korea", []string{"Japan", "Republic of Korea"}, "Republic of Korea"},
		{"initialism", "United States of America", []string{"UK", "U.S.A."}, "U.S.A."},
		{"no match", "Brazil", []string{"Chile", "Peru"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchCountryOption(tc.country, tc.options))
		})
	}
}

func TestExtractOptions(t *testing.T) {
	got := ExtractOptions("Where are you based? [USA, Canada] Options: canada, UK , , Germany")
	assert.Equal(t, []string{"USA", "Canada", "UK", "Germany"}, got)

	assert.Equal(t, []string{"Remote"}, ExtractOptions("Location option: Remote"))
	assert.Empty(t, ExtractOptions("Which country do you live in?"))
}
