package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fadilmartias/submitme/internal/dto"
	"github.com/fadilmartias/submitme/internal/model"
	"github.com/spf13/cobra"
)

var answerFlags struct {
	cv          string
	question    string
	job         string
	tone        string
	length      string
	personality string
}

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Draft an answer to an application question from a parsed CV",
	Example: `  submitme parse cv.pdf > cv.json
  submitme answer --cv cv.json --question "Why do you want to join us?" --job job.json --tone friendly`,
	RunE: runAnswer,
}

func init() {
	rootCmd.AddCommand(answerCmd)

	f := answerCmd.Flags()
	f.StringVar(&answerFlags.cv, "cv", "", "path to a CV record produced by `submitme parse`")
	f.StringVarP(&answerFlags.question, "question", "q", "", "the application question")
	f.StringVar(&answerFlags.job, "job", "", "job context: a file path, or the text itself (JSON object or plain text)")
	f.StringVar(&answerFlags.tone, "tone", "", "voice tone: formal, friendly, confident, humble")
	f.StringVar(&answerFlags.length, "length", "", "answer length: short, medium, long")
	f.StringVar(&answerFlags.personality, "personality", "", "personality: technical, storytelling, balanced")

	_ = answerCmd.MarkFlagRequired("cv")
	_ = answerCmd.MarkFlagRequired("question")
}

func runAnswer(cmd *cobra.Command, _ []string) error {
	cvData, err := os.ReadFile(answerFlags.cv)
	if err != nil {
		return fmt.Errorf("reading cv %s: %w", answerFlags.cv, err)
	}

	req := dto.GenerateAnswerRequest{
		Question: answerFlags.question,
		CVData:   cvData,
		Style: model.StylePreferences{
			VoiceTone:   model.VoiceTone(answerFlags.tone),
			Length:      model.AnswerLength(answerFlags.length),
			Personality: model.Personality(answerFlags.personality),
		},
		JobDescription: jobContext(answerFlags.job),
	}

	input, err := req.ToInput()
	if err != nil {
		return err
	}

	rt, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	result, err := rt.answer.Generate(cmd.Context(), input)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// jobContext reads the --job value from a file when it names one.
func jobContext(value string) *string {
	if value == "" {
		return nil
	}
	if data, err := os.ReadFile(value); err == nil {
		s := string(data)
		return &s
	}
	return &value
}
