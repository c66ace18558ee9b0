package usecase

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
)

var (
	bracketOptionsRe = regexp.MustCompile(`\[([^\]]+)\]`)
	optionsTailRe    = regexp.MustCompile(`(?i)options?:\s*(.+)`)
)

// initialism words skipped when matching "UK" against "United Kingdom".
var initialismStopWords = map[string]bool{"of": true, "the": true, "and": true}

// AnswerBasicField answers identity and contact questions straight from the
// record. The bool is false when the question is not such a question or the
// record has no value for it; the caller then asks the model instead.
func AnswerBasicField(question string, record model.CandidateRecord) (model.AnswerResult, bool) {
	value, ok := basicFieldValue(question, record)
	if !ok {
		return model.AnswerResult{}, false
	}
	return model.AnswerResult{Answer: value, QuestionType: model.QuestionBasicInfo}, true
}

func basicFieldValue(question string, record model.CandidateRecord) (string, bool) {
	q := strings.ToLower(question)
	trimmed := strings.TrimSpace(q)
	first, last := record.NameParts()

	switch {
	case strings.Contains(q, "first name"):
		return nonEmpty(first)
	case containsAny(q, "last name", "surname", "family name"):
		return nonEmpty(last)
	case containsAny(q, "full name", "your name") || trimmed == "name" || trimmed == "what is your name":
		return nonEmpty(record.Name)
	case containsAny(q, "email", "e-mail"):
		return nonEmpty(model.Deref(record.Email))
	case containsAny(q, "phone", "mobile", "contact number"):
		return nonEmpty(model.Deref(record.Phone))
	case strings.Contains(q, "linkedin"):
		return nonEmpty(model.Deref(record.LinkedInURL))
	case containsAny(q, "website", "portfolio", "site"):
		// An empty answer is the right answer for a missing website.
		return model.Deref(record.Website), true
	case containsAny(q, "country", "location"):
		return countryAnswer(question, model.Deref(record.Country))
	}
	return "", false
}

func countryAnswer(question, country string) (string, bool) {
	country = strings.TrimSpace(country)
	if country == "" {
		return "", false
	}

	options := ExtractOptions(question)
	if len(options) == 0 {
		return country, true
	}
	// No matching option answers "", which tells the client to leave the
	// dropdown alone.
	return MatchCountryOption(country, options), true
}

// ExtractOptions collects the choices embedded in a question, from
// "[a, b]" groups and an "Options: a, b" tail. Options are trimmed and
// deduplicated case-insensitively, keeping the first spelling.
func ExtractOptions(question string) []string {
	var collected []string
	for _, m := range bracketOptionsRe.FindAllStringSubmatch(question, -1) {
		collected = append(collected, strings.Split(m[1], ",")...)
	}
	if m := optionsTailRe.FindStringSubmatch(question); m != nil {
		collected = append(collected, strings.Split(m[1], ",")...)
	}

	seen := make(map[string]bool, len(collected))
	options := make([]string, 0, len(collected))
	for _, opt := range collected {
		clean := strings.TrimSpace(opt)
		key := strings.ToLower(clean)
		if clean == "" || seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, clean)
	}
	return options
}

// MatchCountryOption picks the option naming country: exact match first,
// then substring in either direction, then initialism. All comparisons
// ignore case. It returns "" when nothing matches.
func MatchCountryOption(country string, options []string) string {
	c := strings.ToLower(strings.TrimSpace(country))

	for _, opt := range options {
		if strings.ToLower(opt) == c {
			return opt
		}
	}
	for _, opt := range options {
		o := strings.ToLower(opt)
		if strings.Contains(o, c) || strings.Contains(c, o) {
			return opt
		}
	}

	initials := initialism(c)
	if len(initials) < 2 {
		return ""
	}
	for _, opt := range options {
		o := strings.ToLower(strings.ReplaceAll(opt, ".", ""))
		if o == initials {
			return opt
		}
	}
	return ""
}

func initialism(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		if initialismStopWords[word] {
			continue
		}
		b.WriteString(string([]rune(word)[:1]))
	}
	return b.String()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func nonEmpty(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
