package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeMode selects how strictly a candidate payload is checked.
type DecodeMode int

const (
	// Strict requires every non-nullable key. Used for LLM output, where the
	// schema lists all keys as required.
	Strict DecodeMode = iota
	// Lenient requires only name and summary; lists may be omitted. Used for
	// records sent back by clients.
	Lenient
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNullableString
	kindStringArray
	kindObjectArray
)

type presence int

const (
	optional presence = iota
	strictOnly
	always
)

type fieldRule struct {
	key   string
	kind  fieldKind
	need  presence
	items []fieldRule
}

var candidateRules = []fieldRule{
	{key: "name", kind: kindString, need: always},
	{key: "first_name", kind: kindNullableString},
	{key: "last_name", kind: kindNullableString},
	{key: "email", kind: kindNullableString},
	{key: "phone", kind: kindNullableString},
	{key: "linkedin_url", kind: kindNullableString},
	{key: "website", kind: kindNullableString},
	{key: "country", kind: kindNullableString},
	{key: "summary", kind: kindString, need: always},
	{key: "experience", kind: kindObjectArray, need: strictOnly, items: []fieldRule{
		{key: "company", kind: kindString, need: always},
		{key: "role", kind: kindString, need: always},
		{key: "duration", kind: kindNullableString},
		{key: "achievements", kind: kindStringArray, need: strictOnly},
	}},
	{key: "skills", kind: kindStringArray, need: strictOnly},
	{key: "projects", kind: kindObjectArray, need: strictOnly, items: []fieldRule{
		{key: "name", kind: kindString, need: always},
		{key: "description", kind: kindString, need: always},
		{key: "technologies", kind: kindStringArray, need: strictOnly},
	}},
	{key: "education", kind: kindStringArray, need: strictOnly},
}

// DecodeCandidate checks raw against the CandidateRecord shape and decodes it.
// The returned record is normalized. Shape problems are reported as
// *SchemaValidationError carrying the raw payload.
func DecodeCandidate(raw []byte, mode DecodeMode) (*CandidateRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &SchemaValidationError{Raw: string(raw), Err: errors.New("payload is not valid JSON")}
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, &SchemaValidationError{Raw: string(raw), Err: errors.New("payload is not a JSON object")}
	}

	if path, err := checkFields(root, candidateRules, "", mode); err != nil {
		return nil, &SchemaValidationError{Path: path, Raw: string(raw), Err: err}
	}

	var record CandidateRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, &SchemaValidationError{Raw: string(raw), Err: fmt.Errorf("decode: %w", err)}
	}
	record.Normalize()

	return &record, nil
}

func checkFields(obj gjson.Result, rules []fieldRule, prefix string, mode DecodeMode) (string, error) {
	for _, rule := range rules {
		path := prefix + rule.key
		value := obj.Get(rule.key)

		if !value.Exists() {
			if rule.need == always || (rule.need == strictOnly && mode == Strict) {
				return path, errors.New("required field is missing")
			}
			continue
		}

		switch rule.kind {
		case kindString:
			if value.Type != gjson.String {
				return path, fmt.Errorf("expected string, got %s", describe(value))
			}
		case kindNullableString:
			if value.Type != gjson.String && value.Type != gjson.Null {
				return path, fmt.Errorf("expected string or null, got %s", describe(value))
			}
		case kindStringArray:
			if !value.IsArray() {
				return path, fmt.Errorf("expected array, got %s", describe(value))
			}
			for i, item := range value.Array() {
				if item.Type != gjson.String {
					return fmt.Sprintf("%s.%d", path, i), fmt.Errorf("expected string, got %s", describe(item))
				}
			}
		case kindObjectArray:
			if !value.IsArray() {
				return path, fmt.Errorf("expected array, got %s", describe(value))
			}
			for i, item := range value.Array() {
				itemPath := fmt.Sprintf("%s.%d", path, i)
				if !item.IsObject() {
					return itemPath, fmt.Errorf("expected object, got %s", describe(item))
				}
				if p, err := checkFields(item, rule.items, itemPath+".", mode); err != nil {
					return p, err
				}
			}
		}
	}
	return "", nil
}

func describe(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	case v.Type == gjson.Null:
		return "null"
	case v.Type == gjson.Number:
		return "number"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "boolean"
	default:
		return "string"
	}
}
