package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadilmartias/submitme/internal/dto"
	"github.com/fadilmartias/submitme/internal/model"
	"github.com/fadilmartias/submitme/internal/usecase"
	"github.com/fadilmartias/submitme/internal/util"
	"github.com/gofiber/fiber/v2"
)

const generateFailedMessage = "Failed to generate answer"

type AnswerHandler struct {
	uc      *usecase.AnswerUsecase
	devMode bool
}

func NewAnswerHandler(uc *usecase.AnswerUsecase, devMode bool) *AnswerHandler {
	return &AnswerHandler{uc: uc, devMode: devMode}
}

func (h *AnswerHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/generate_answer", h.GenerateAnswer)
}

func (h *AnswerHandler) GenerateAnswer(c *fiber.Ctx) error {
	var req dto.GenerateAnswerRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, bodyError(err))
	}

	input, err := req.ToInput()
	if err != nil {
		return h.fail(c, err)
	}

	result, err := h.uc.Generate(c.UserContext(), input)
	if err != nil {
		return h.fail(c, err)
	}

	return util.SuccessResponse(c, fiber.StatusOK, result)
}

// bodyError separates unparsable JSON (400) from JSON with wrongly typed
// fields (422).
func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return model.NewClientInputError(
			fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			fmt.Errorf("%w: %w", model.ErrInvalidRequest, err),
		)
	}
	return model.NewClientInputError("Request body must be valid JSON", err)
}

func (h *AnswerHandler) fail(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorFormat(err, generateFailedMessage, h.devMode))
}
