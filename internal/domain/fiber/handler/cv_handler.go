package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/fadilmartias/submitme/internal/usecase"
	"github.com/fadilmartias/submitme/internal/util"
	"github.com/gofiber/fiber/v2"
)

const parseFailedMessage = "Failed to parse CV"

type CVHandler struct {
	uc      *usecase.CVUsecase
	maxSize int
	devMode bool
}

func NewCVHandler(uc *usecase.CVUsecase, maxSize int, devMode bool) *CVHandler {
	return &CVHandler{uc: uc, maxSize: maxSize, devMode: devMode}
}

func (h *CVHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload_cv", h.UploadCV)
}

// UploadCV accepts a PDF or DOCX in the multipart field "file" and returns
// the structured CandidateRecord.
func (h *CVHandler) UploadCV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, model.NewClientInputError(`CV file is required in the "file" form field`, err))
	}

	if h.maxSize > 0 && file.Size > int64(h.maxSize) {
		return h.fail(c, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("CV file is too large (max %d MB)", h.maxSize/(1024*1024))))
	}

	if !util.IsSupportedFile(file.Filename) {
		return h.fail(c, util.UnsupportedFormatError())
	}

	f, err := file.Open()
	if err != nil {
		return h.fail(c, model.NewClientInputError("Could not read the uploaded file", err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return h.fail(c, model.NewClientInputError("Could not read the uploaded file", err))
	}

	record, err := h.uc.ParseFile(c.UserContext(), file.Filename, data)
	if err != nil {
		return h.fail(c, err)
	}

	return util.SuccessResponse(c, fiber.StatusOK, record)
}

func (h *CVHandler) fail(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorFormat(err, parseFailedMessage, h.devMode))
}
