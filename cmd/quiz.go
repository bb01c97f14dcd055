package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgoyal/studyhall/internal/llm"
	"github.com/rgoyal/studyhall/internal/quizgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <material-file>",
	Short: "Generate a quiz from a study material file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read material: %w", err)
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			return fmt.Errorf("model provider config: %w", err)
		}
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, s.Events())
		if err != nil {
			return err
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		quiz, err := gen.Generate(cmd.Context(), quizgen.Material{
			Title:   title,
			Content: string(content),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Quiz for %q (%s, %d questions)\n\n", quiz.MaterialTitle, quiz.Model, len(quiz.Questions))
		for i, q := range quiz.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				marker := " "
				if opt == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("   %s %c) %s\n", marker, 'a'+j, opt)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().String("title", "", "Material title (defaults to the file name)")
}
