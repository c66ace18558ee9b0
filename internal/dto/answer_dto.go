package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GenerateAnswerRequest is the body of POST /generate_answer. CVData stays raw
// until it has been shape-checked.
type GenerateAnswerRequest struct {
	Question       string                 `json:"question" validate:"required"`
	CVData         json.RawMessage        `json:"cv_data" validate:"required"`
	Style          model.StylePreferences `json:"style"`
	JobDescription *string                `json:"job_description"`
}

// ToInput validates the request and converts it for the answer use case.
// Failures are *model.ClientInputError wrapping model.ErrInvalidRequest.
func (r GenerateAnswerRequest) ToInput() (model.GenerateAnswerInput, error) {
	if err := validate.Struct(r); err != nil {
		return model.GenerateAnswerInput{}, invalid(validationMessage(err), err)
	}
	if strings.TrimSpace(r.Question) == "" {
		return model.GenerateAnswerInput{}, invalid("question must not be blank", errors.New("blank question"))
	}

	record, err := model.DecodeCandidate(r.CVData, model.Lenient)
	if err != nil {
		msg := "cv_data is not a valid CV record"
		var schemaErr *model.SchemaValidationError
		if errors.As(err, &schemaErr) && schemaErr.Path != "" {
			msg = fmt.Sprintf("cv_data.%s: %v", schemaErr.Path, schemaErr.Err)
		}
		return model.GenerateAnswerInput{}, invalid(msg, err)
	}

	style := r.Style.WithDefaults()
	if err := style.Validate(); err != nil {
		return model.GenerateAnswerInput{}, invalid(err.Error(), err)
	}

	return model.GenerateAnswerInput{
		Question:       r.Question,
		CV:             *record,
		Style:          style,
		JobDescription: r.JobDescription,
	}, nil
}

func invalid(message string, err error) error {
	return model.NewClientInputError(message, fmt.Errorf("%w: %w", model.ErrInvalidRequest, err))
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "GenerateAnswerRequest.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
