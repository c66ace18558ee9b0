package usecase

import (
	"strings"

	"github.com/tidwall/gjson"
)

type jobContextField struct {
	key    string
	format func(string) string
}

var jobContextFields = []jobContextField{
	{"companyName", func(v string) string { return "Company: " + v + "\n" }},
	{"jobTitle", func(v string) string { return "Position: " + v + "\n" }},
	{"jobDescription", func(v string) string { return "Job Description:\n" + v + "\n" }},
	{"companyValues", func(v string) string { return "Company Values/Culture:\n" + v + "\n" }},
}

// BuildCompanyContext turns the client's job description into the company
// block of the prompt. A JSON object contributes its known fields; anything
// else is passed through as raw text.
func BuildCompanyContext(jobDescription *string) string {
	if jobDescription == nil || strings.TrimSpace(*jobDescription) == "" {
		return ""
	}
	raw := *jobDescription

	if !gjson.Valid(raw) {
		return rawJobContext(raw)
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return rawJobContext(raw)
	}

	var b strings.Builder
	for _, field := range jobContextFields {
		value := parsed.Get(field.key)
		if !truthy(value) {
			continue
		}
		b.WriteString(field.format(jsonText(value)))
	}
	return b.String()
}

func rawJobContext(raw string) string {
	return "Job Context:\n" + raw + "\n"
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	case gjson.True:
		return true
	case gjson.JSON:
		if v.IsArray() {
			return len(v.Array()) > 0
		}
		return len(v.Map()) > 0
	default:
		return false
	}
}

// jsonText renders strings bare and everything else as compact JSON.
func jsonText(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return v.Raw
}
