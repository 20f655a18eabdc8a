// Package pitch asks a language model for a one-line pitch per
// recommendation. Pitches only decorate recommendations; they never change
// which games are recommended or why.
package pitch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/icco/gamelog/lib/pitch/prompts"
	"github.com/icco/gamelog/lib/stats"
	"github.com/icco/gamelog/lib/types"
	"github.com/icco/gamelog/lib/validation"
	"github.com/icco/gamelog/models"
	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers without any choices.
var ErrEmptyResponse = errors.New("model returned no choices")

type Pitcher struct {
	client *openai.Client
	model  string
	logger *slog.Logger
	system *template.Template
	user   *template.Template
}

// promptContext is the data the user prompt template is executed with.
type promptContext struct {
	types.StatisticsSummary
	Recommendations []models.Recommendation
}

// New builds a Pitcher talking to OpenAI, or to baseURL when it is set.
func New(apiKey, baseURL, model string, logger *slog.Logger) (*Pitcher, error) {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return NewWithClient(openai.NewClientWithConfig(config), model, logger)
}

// NewWithClient builds a Pitcher around an existing client.
func NewWithClient(client *openai.Client, model string, logger *slog.Logger) (*Pitcher, error) {
	system, err := loadPromptTemplate("system.txt")
	if err != nil {
		return nil, err
	}
	user, err := loadPromptTemplate("user.txt")
	if err != nil {
		return nil, err
	}

	return &Pitcher{
		client: client,
		model:  model,
		logger: logger,
		system: system,
		user:   user,
	}, nil
}

func loadPromptTemplate(filename string) (*template.Template, error) {
	content, err := prompts.FS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	tmpl, err := template.New(filename).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %s: %w", filename, err)
	}

	return tmpl, nil
}

// Pitch returns a copy of recs with Pitch filled in for every game the model
// wrote one for. games is the user's collection and shapes the prompt.
func (p *Pitcher) Pitch(ctx context.Context, games []models.Game, recs []models.Recommendation) ([]models.Recommendation, error) {
	out := make([]models.Recommendation, len(recs))
	copy(out, recs)
	if len(out) == 0 {
		return out, nil
	}

	var systemPrompt, userPrompt strings.Builder
	if err := p.system.Execute(&systemPrompt, nil); err != nil {
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}
	data := promptContext{StatisticsSummary: stats.Compute(games), Recommendations: recs}
	if err := p.user.Execute(&userPrompt, data); err != nil {
		return nil, fmt.Errorf("failed to generate user prompt: %w", err)
	}

	p.logger.DebugContext(ctx, "Requesting pitches",
		slog.String("model", p.model),
		slog.Int("count", len(recs)))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt.String()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt.String()},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	parsed, err := validation.ValidateAndParsePitchResponse([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("invalid pitch response: %w", err)
	}

	byID := make(map[int64]string, len(parsed.Pitches))
	for _, item := range parsed.Pitches {
		byID[item.ID] = item.Pitch
	}

	matched := 0
	for i := range out {
		if text, ok := byID[out[i].Game.ID]; ok {
			out[i].Pitch = text
			matched++
		}
	}

	p.logger.DebugContext(ctx, "Matched pitches",
		slog.Int("returned", len(parsed.Pitches)),
		slog.Int("matched", matched))

	return out, nil
}
