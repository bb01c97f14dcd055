package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgoyal/studyhall/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation. Questions is
// kept raw so a missing or non-array field is distinguishable from a
// parse failure.
type quizOutput struct {
	Questions json.RawMessage `json:"questions"`
}

// Generate produces a quiz for the given material.
func (g *LLMGenerator) Generate(ctx context.Context, material Material) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(material, g.config.MaxContentChars)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	questions, err := parseQuestions(string(resp.Content))
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		MaterialTitle: material.Title,
		Model:         resp.Model,
		Questions:     questions,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(quiz); verr != nil {
			return nil, verr
		}
	}

	return quiz, nil
}

// parseQuestions turns raw model text into questions: strip any
// Markdown fence, parse JSON, then require an array-valued questions
// field. Each failure mode gets its own error type.
func parseQuestions(text string) ([]QuizQuestion, error) {
	cleaned := stripFences(text)

	var out quizOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		// Log the raw text once so a bad response can be diagnosed.
		fmt.Fprintf(os.Stderr, "quiz response failed to parse, raw text follows:\n%s\n", text)
		return nil, &ParseError{Raw: text, Err: err}
	}

	if len(out.Questions) == 0 {
		return nil, &SchemaError{Reason: "missing questions field"}
	}

	var questions []QuizQuestion
	if err := json.Unmarshal(out.Questions, &questions); err != nil {
		return nil, &SchemaError{Reason: "questions is not an array of questions"}
	}

	return questions, nil
}
