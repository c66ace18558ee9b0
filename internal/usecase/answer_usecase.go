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
	"go.uber.org/zap"
)

const logPreviewLimit = 120

type AnswerUsecase struct {
	llm     service.LLMServiceInterface
	prompts *prompt.Config
	logger  *zap.Logger
}

func NewAnswerUsecase(llm service.LLMServiceInterface, prompts *prompt.Config, log *zap.Logger) *AnswerUsecase {
	return &AnswerUsecase{
		llm:     llm,
		prompts: prompts,
		logger:  logger.WithCommonFields(log, llm.Provider(), llm.Model()),
	}
}

// Generate answers one application question. Identity and contact questions
// are answered from the record without calling the model; everything else is
// a single completion. Provider failures are returned as is, never retried.
func (uc *AnswerUsecase) Generate(ctx context.Context, input model.GenerateAnswerInput) (model.AnswerResult, error) {
	log := uc.logger.With(zap.String("question", logger.TruncateForLog(input.Question, logPreviewLimit)))

	if result, ok := AnswerBasicField(input.Question, input.CV); ok {
		log.Info("answered from cv fields", zap.String("answer", result.Answer))
		return result, nil
	}

	questionType := ClassifyQuestion(input.Question)

	style, err := StyleInstructions(uc.prompts.Style, input.Style)
	if err != nil {
		return model.AnswerResult{}, err
	}

	system, err := uc.prompts.Answer.RenderSystem(prompt.AnswerSystemData{
		CompanyContext:    BuildCompanyContext(input.JobDescription),
		StyleInstructions: style,
		CVContext:         BuildCVContext(input.CV),
	})
	if err != nil {
		return model.AnswerResult{}, &model.ConfigError{Key: "prompts.answer.system", Err: err}
	}

	user, err := uc.prompts.Answer.RenderUser(input.Question)
	if err != nil {
		return model.AnswerResult{}, &model.ConfigError{Key: "prompts.answer.user", Err: err}
	}

	log.Debug("requesting answer", zap.String("question_type", string(questionType)))

	out, err := uc.llm.Complete(ctx, service.CompletionRequest{
		Messages: []service.Message{
			{Role: service.RoleSystem, Content: system},
			{Role: service.RoleUser, Content: user},
		},
		Temperature: uc.prompts.Answer.Temperature,
		MaxTokens:   uc.prompts.Answer.MaxTokens,
	})
	if err != nil {
		log.Error("answer generation failed", zap.Error(err))
		return model.AnswerResult{}, fmt.Errorf("generate answer: %w", err)
	}

	answer := strings.TrimSpace(out)
	if answer == "" {
		return model.AnswerResult{}, &model.ProviderError{Provider: uc.llm.Provider(), Err: errors.New("empty completion")}
	}

	log.Info("answer generated",
		zap.String("question_type", string(questionType)),
		zap.Int("answer_length", len(answer)),
	)
	return model.AnswerResult{Answer: answer, QuestionType: questionType}, nil
}
