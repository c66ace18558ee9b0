// Package prompt holds the prompt texts, decoding parameters, style table and
// CV JSON schema used for LLM calls. They live in a versioned YAML document so
// that prompt variants are configuration, not code.
package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/fadilmartias/submitme/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// Decoding holds the sampling parameters of one LLM call.
type Decoding struct {
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type ExtractionPrompt struct {
	Decoding   `yaml:",inline"`
	System     string         `yaml:"system"`
	User       string         `yaml:"user"`
	SchemaName string         `yaml:"schema_name"`
	Schema     map[string]any `yaml:"schema"`

	userTmpl *template.Template
}

type AnswerPrompt struct {
	Decoding      `yaml:",inline"`
	System        string `yaml:"system"`
	User          string `yaml:"user"`
	NoCompanyNote string `yaml:"no_company_note"`

	systemTmpl *template.Template
	userTmpl   *template.Template
}

// StyleTable maps every style enum value to its instruction sentence.
type StyleTable struct {
	Tone        map[model.VoiceTone]string    `yaml:"tone"`
	Length      map[model.AnswerLength]string `yaml:"length"`
	Personality map[model.Personality]string  `yaml:"personality"`
}

type Config struct {
	Version      string           `yaml:"version"`
	CVExtraction ExtractionPrompt `yaml:"cv_extraction"`
	Answer       AnswerPrompt     `yaml:"answer"`
	Style        StyleTable       `yaml:"style"`
}

// AnswerSystemData is the input of the answer system template.
type AnswerSystemData struct {
	CompanyContext    string
	NoCompanyNote     string
	StyleInstructions string
	CVContext         string
}

// Default returns the built-in prompt configuration.
func Default() (*Config, error) {
	return Parse(defaultPrompts)
}

// Load reads the prompt configuration from path, or returns the built-in one
// when path is empty.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.ConfigError{Key: "PROMPTS_FILE", Err: fmt.Errorf("read %q: %w", path, err)}
	}
	return Parse(data)
}

// Parse decodes and validates a prompt configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &model.ConfigError{Key: "prompts", Err: fmt.Errorf("decode yaml: %w", err)}
	}

	if err := cfg.validate(); err != nil {
		return nil, &model.ConfigError{Key: "prompts", Err: err}
	}

	var err error
	if cfg.CVExtraction.userTmpl, err = template.New("cv_extraction.user").Parse(cfg.CVExtraction.User); err != nil {
		return nil, &model.ConfigError{Key: "prompts.cv_extraction.user", Err: err}
	}
	if cfg.Answer.systemTmpl, err = template.New("answer.system").Parse(cfg.Answer.System); err != nil {
		return nil, &model.ConfigError{Key: "prompts.answer.system", Err: err}
	}
	if cfg.Answer.userTmpl, err = template.New("answer.user").Parse(cfg.Answer.User); err != nil {
		return nil, &model.ConfigError{Key: "prompts.answer.user", Err: err}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("version is required")
	}

	ex := c.CVExtraction
	if strings.TrimSpace(ex.System) == "" || strings.TrimSpace(ex.User) == "" {
		return errors.New("cv_extraction system and user prompts are required")
	}
	if strings.TrimSpace(ex.SchemaName) == "" || len(ex.Schema) == 0 {
		return errors.New("cv_extraction schema_name and schema are required")
	}
	if err := ex.Decoding.validate("cv_extraction"); err != nil {
		return err
	}

	an := c.Answer
	if strings.TrimSpace(an.System) == "" || strings.TrimSpace(an.User) == "" {
		return errors.New("answer system and user prompts are required")
	}
	if err := an.Decoding.validate("answer"); err != nil {
		return err
	}

	return c.Style.validate()
}

func (d Decoding) validate(section string) error {
	if d.MaxTokens <= 0 {
		return fmt.Errorf("%s max_tokens must be positive", section)
	}
	if d.Temperature < 0 || d.Temperature > 2 {
		return fmt.Errorf("%s temperature must be within [0, 2]", section)
	}
	return nil
}

// validate checks that the table is total over the style enums.
func (t StyleTable) validate() error {
	for _, v := range model.VoiceTones {
		if strings.TrimSpace(t.Tone[v]) == "" {
			return fmt.Errorf("style.tone.%s is missing", v)
		}
	}
	for _, v := range model.AnswerLengths {
		if strings.TrimSpace(t.Length[v]) == "" {
			return fmt.Errorf("style.length.%s is missing", v)
		}
	}
	for _, v := range model.Personalities {
		if strings.TrimSpace(t.Personality[v]) == "" {
			return fmt.Errorf("style.personality.%s is missing", v)
		}
	}
	return nil
}

// RenderUser renders the extraction user prompt for the extracted CV text.
func (p *ExtractionPrompt) RenderUser(text string) (string, error) {
	return render(p.userTmpl, struct{ Text string }{Text: text})
}

func (p *AnswerPrompt) RenderSystem(data AnswerSystemData) (string, error) {
	if data.NoCompanyNote == "" {
		data.NoCompanyNote = p.NoCompanyNote
	}
	return render(p.systemTmpl, data)
}

func (p *AnswerPrompt) RenderUser(question string) (string, error) {
	return render(p.userTmpl, struct{ Question string }{Question: question})
}

func render(tmpl *template.Template, data any) (string, error) {
	if tmpl == nil {
		return "", errors.New("prompt template is not initialized")
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
