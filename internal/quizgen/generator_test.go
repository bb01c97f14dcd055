package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rgoyal/studyhall/internal/llm"
)

var sampleMaterial = Material{
	Title:   "Photosynthesis Notes",
	Content: "Chlorophyll absorbs light. Plants produce glucose and oxygen.",
}

func fencedQuiz(n int) string {
	var qs []string
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(
			`{"question":"Q%d?","options":["A","B","C","D"],"correct_answer":"A"}`, i+1))
	}
	return "```json\n{\"questions\":[" + strings.Join(qs, ",") + "]}\n```"
}

func TestGenerate_StripsFences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fencedQuiz(6)),
	})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), sampleMaterial)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz.Questions) != 6 {
		t.Fatalf("questions = %d, want 6", len(quiz.Questions))
	}
	if quiz.MaterialTitle != "Photosynthesis Notes" {
		t.Errorf("material title = %q", quiz.MaterialTitle)
	}
	if quiz.Questions[0].CorrectAnswer != "A" {
		t.Errorf("correct_answer = %q, want A", quiz.Questions[0].CorrectAnswer)
	}
}

func TestGenerate_BareFence(t *testing.T) {
	payload := "```\n{\"questions\":[{\"question\":\"Q?\",\"options\":[\"A\",\"B\",\"C\",\"D\"],\"correct_answer\":\"B\"}]}\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), sampleMaterial)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(quiz.Questions))
	}
}

func TestGenerate_EmptyCompletionSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrEmptyCompletion{Model: "mock"},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleMaterial)
	var empty *llm.ErrEmptyCompletion
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\nnot json at all\n```"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleMaterial)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(pe.Raw, "not json at all") {
		t.Errorf("ParseError.Raw = %q, want original text", pe.Raw)
	}
}

func TestGenerate_MissingQuestionsField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[]}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleMaterial)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestGenerate_QuestionsNotArray(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":"lots"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleMaterial)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestGenerate_PromptCarriesMaterial(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fencedQuiz(5))})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), sampleMaterial); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := len(mock.Calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request missing quiz schema")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Photosynthesis Notes") || !strings.Contains(msg, "Chlorophyll") {
		t.Errorf("user message missing material: %q", msg)
	}
}

func TestGenerate_ContentTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fencedQuiz(5))})
	cfg := DefaultConfig()
	cfg.MaxContentChars = 10
	gen := New(mock, cfg)

	long := Material{Title: "T", Content: strings.Repeat("x", 100)}
	if _, err := gen.Generate(context.Background(), long); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if strings.Count(msg, "x") != 10 {
		t.Errorf("content not truncated: %d x's", strings.Count(msg, "x"))
	}
}

func TestStructuralValidator(t *testing.T) {
	good := QuizQuestion{Question: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"}

	tests := []struct {
		name    string
		mutate  func(*QuizQuestion)
		wantErr bool
	}{
		{"valid", func(q *QuizQuestion) {}, false},
		{"three options", func(q *QuizQuestion) { q.Options = q.Options[:3] }, true},
		{"five options", func(q *QuizQuestion) { q.Options = append(q.Options, "E") }, true},
		{"answer not an option", func(q *QuizQuestion) { q.CorrectAnswer = "Z" }, true},
		{"case mismatch", func(q *QuizQuestion) { q.CorrectAnswer = "a" }, true},
		{"whitespace mismatch", func(q *QuizQuestion) { q.CorrectAnswer = "A " }, true},
		{"empty question text", func(q *QuizQuestion) { q.Question = "" }, true},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := good
			q.Options = append([]string(nil), good.Options...)
			tt.mutate(&q)
			err := v.Validate(&Quiz{Questions: []QuizQuestion{q}})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestStructuralValidator_EmptyQuiz(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(&Quiz{}); err == nil {
		t.Fatal("expected error for empty quiz")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences = %q, want %q", got, tt.want)
			}
		})
	}
}
