package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/submitme/internal/logger"
	"github.com/fadilmartias/submitme/internal/model"
	"github.com/fadilmartias/submitme/internal/prompt"
	"github.com/fadilmartias/submitme/internal/service"
	"github.com/fadilmartias/submitme/internal/util"
	"go.uber.org/zap"
)

const rawPayloadLogLimit = 2000

// TextExtractor turns an uploaded document into plain text.
type TextExtractor func(filename string, data []byte) (string, error)

type CVUsecase struct {
	llm     service.LLMServiceInterface
	prompts *prompt.Config
	extract TextExtractor
	logger  *zap.Logger
}

func NewCVUsecase(llm service.LLMServiceInterface, prompts *prompt.Config, log *zap.Logger) *CVUsecase {
	return &CVUsecase{
		llm:     llm,
		prompts: prompts,
		extract: util.ExtractText,
		logger:  logger.WithCommonFields(log, llm.Provider(), llm.Model()),
	}
}

// WithExtractor replaces the document extractor.
func (uc *CVUsecase) WithExtractor(extract TextExtractor) *CVUsecase {
	uc.extract = extract
	return uc
}

// ParseFile extracts the text of an uploaded CV and structures it.
func (uc *CVUsecase) ParseFile(ctx context.Context, filename string, data []byte) (*model.CandidateRecord, error) {
	log := uc.logger.With(zap.String("filename", filename), zap.Int("size", len(data)))

	text, err := uc.extract(filename, data)
	if err != nil {
		var clientErr *model.ClientInputError
		if errors.As(err, &clientErr) {
			return nil, err
		}
		log.Warn("text extraction failed", zap.Error(err))
		return nil, &model.ExtractionError{Filename: filename, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		log.Warn("document has no text layer")
		return nil, &model.ExtractionError{Filename: filename, Err: errors.New("document contains no extractable text")}
	}

	log.Debug("text extracted", zap.Int("chars", len(text)))
	return uc.ParseText(ctx, text)
}

// ParseText asks the model for a CandidateRecord matching the configured
// schema and validates what comes back.
func (uc *CVUsecase) ParseText(ctx context.Context, text string) (*model.CandidateRecord, error) {
	extraction := uc.prompts.CVExtraction

	user, err := extraction.RenderUser(text)
	if err != nil {
		return nil, &model.ConfigError{Key: "prompts.cv_extraction.user", Err: err}
	}

	out, err := uc.llm.Complete(ctx, service.CompletionRequest{
		Messages: []service.Message{
			{Role: service.RoleSystem, Content: extraction.System},
			{Role: service.RoleUser, Content: user},
		},
		Schema:      &service.JSONSchema{Name: extraction.SchemaName, Schema: extraction.Schema},
		Temperature: extraction.Temperature,
		MaxTokens:   extraction.MaxTokens,
	})
	if err != nil {
		uc.logger.Error("cv extraction call failed", zap.Error(err))
		return nil, fmt.Errorf("extract cv: %w", err)
	}

	record, err := model.DecodeCandidate([]byte(out), model.Strict)
	if err != nil {
		uc.logger.Error("model output does not match the cv schema",
			zap.Error(err),
			zap.String("raw", logger.TruncateForLog(out, rawPayloadLogLimit)),
		)
		return nil, err
	}

	uc.logger.Info("cv parsed",
		zap.Int("experience", len(record.Experience)),
		zap.Int("skills", len(record.Skills)),
		zap.Int("projects", len(record.Projects)),
	)
	return record, nil
}
