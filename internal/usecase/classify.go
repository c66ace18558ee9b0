package usecase

import (
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
)

type classifierRule struct {
	questionType model.QuestionType
	keywords     []string
}

// Rules are checked in order; the first hit wins.
var classifierRules = []classifierRule{
	{model.QuestionMotivation, []string{"why", "motivation", "interested", "want to join"}},
	{model.QuestionExperience, []string{"project", "experience", "worked on", "tell us about"}},
	{model.QuestionSkills, []string{"skill", "knowledge", "proficient", "familiar with"}},
	{model.QuestionBehavioral, []string{"challenge", "conflict", "difficult", "problem", "situation"}},
}

// ClassifyQuestion labels a question by keyword. The label only shapes the
// response metadata; it does not change the prompt.
func ClassifyQuestion(question string) model.QuestionType {
	q := strings.ToLower(question)
	for _, rule := range classifierRules {
		if containsAny(q, rule.keywords...) {
			return rule.questionType
		}
	}
	return model.QuestionGeneral
}
