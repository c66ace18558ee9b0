package model

type QuestionType string

const (
	QuestionMotivation QuestionType = "motivation"
	QuestionExperience QuestionType = "experience"
	QuestionSkills     QuestionType = "skills"
	QuestionBehavioral QuestionType = "behavioral"
	QuestionGeneral    QuestionType = "general"
	QuestionBasicInfo  QuestionType = "basic_info"
)

type AnswerResult struct {
	Answer       string       `json:"answer"`
	QuestionType QuestionType `json:"question_type"`
}

// GenerateAnswerInput carries everything one answer generation needs.
// JobDescription is nil when the client supplied none.
type GenerateAnswerInput struct {
	Question       string
	CV             CandidateRecord
	Style          StylePreferences
	JobDescription *string
}
