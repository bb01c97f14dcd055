package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study assistant creating practice quizzes from a student's own material.

Rules:
- Generate between 5 and 10 multiple-choice questions.
- Every question must be answerable from the provided material alone. Do not test outside knowledge.
- Each question has exactly 4 options where exactly one is correct. Distractors should be plausible misreadings of the material, not random values.
- correct_answer must equal the text of one option exactly, character for character.
- Cover different parts of the material rather than rephrasing one passage repeatedly.
- Keep question and option text concise and in plain text. No Markdown, no numbering prefixes.`

// buildUserMessage constructs the user message from the material,
// truncating content that exceeds the configured limit.
func buildUserMessage(m Material, maxContentChars int) string {
	content := m.Content
	if maxContentChars > 0 && len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Material title: %s\n\n", m.Title)
	b.WriteString("Material content:\n")
	b.WriteString(content)
	return b.String()
}
