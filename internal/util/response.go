package util

import (
	"errors"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/fadilmartias/submitme/internal/response"
	"github.com/gofiber/fiber/v2"
)

const (
	extractionFailedMessage = "Could not extract any text from the uploaded file."
	providerTimeoutMessage  = "The language model did not respond in time. Please try again."
	internalErrorMessage    = "Internal Server Error"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
}

// SuccessResponse writes data as the bare JSON body. The browser extension
// consumes records and answers without an envelope.
func SuccessResponse(c *fiber.Ctx, code int, data any) error {
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}

	message := params.Message
	if message == "" {
		message = internalErrorMessage
	}

	return c.Status(code).JSON(response.ErrorBody{
		Detail:     message,
		DevMessage: params.DevMessage,
	})
}

// HTTPStatus maps an error from the use cases to the status code reported to
// the caller.
func HTTPStatus(err error) int {
	if err == nil {
		return fiber.StatusOK
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	var clientErr *model.ClientInputError
	if errors.As(err, &clientErr) {
		if errors.Is(err, model.ErrInvalidRequest) {
			return fiber.StatusUnprocessableEntity
		}
		return fiber.StatusBadRequest
	}

	var extractionErr *model.ExtractionError
	if errors.As(err, &extractionErr) {
		return fiber.StatusBadRequest
	}

	if errors.Is(err, model.ErrProviderTimeout) {
		return fiber.StatusGatewayTimeout
	}

	return fiber.StatusInternalServerError
}

// ErrorFormat builds the response for err. Client errors carry their own
// message; server errors report fallback so internals never leak. DevMessage
// is set for client errors only, and only when devMode is on.
func ErrorFormat(err error, fallback string, devMode bool) ErrorResponseFormat {
	code := HTTPStatus(err)
	params := ErrorResponseFormat{Code: code, Message: fallback}

	var (
		fiberErr      *fiber.Error
		clientErr     *model.ClientInputError
		extractionErr *model.ExtractionError
	)
	switch {
	case errors.As(err, &fiberErr):
		params.Message = fiberErr.Message
	case errors.As(err, &clientErr):
		params.Message = clientErr.Message
	case errors.As(err, &extractionErr):
		params.Message = extractionFailedMessage
	case code == fiber.StatusGatewayTimeout:
		params.Message = providerTimeoutMessage
	}

	if devMode && code < fiber.StatusInternalServerError && err != nil {
		params.DevMessage = err.Error()
	}
	return params
}
