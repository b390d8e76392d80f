package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/saulo-duarte/quiz-api/internal/authoring"
	"github.com/saulo-duarte/quiz-api/internal/client"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/grading"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/urfave/cli/v2"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "validate a draft and create the quiz",
		Flags: []cli.Flag{fileFlag()},
		Action: func(cCtx *cli.Context) error {
			d, err := loadDraft(cCtx.String("file"))
			if err != nil {
				return err
			}

			dto, err := authoring.Submit(d)
			if err != nil {
				if verr, ok := quiz.IsValidationError(err); ok {
					printFields(cCtx, verr.Fields)
					return cli.Exit("draft is not valid", 1)
				}
				return err
			}

			created, err := apiClient(cCtx).CreateQuiz(cCtx.Context, dto)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
					printFields(cCtx, apiErr.Fields)
				}
				return err
			}
			return printJSON(cCtx, created)
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list quizzes, newest first",
		Action: func(cCtx *cli.Context) error {
			quizzes, err := apiClient(cCtx).ListQuizzes(cCtx.Context)
			if err != nil {
				config.WithContext(cCtx.Context).WithError(err).Warn("Failed to fetch quizzes")
				quizzes = []quiz.QuizSummary{}
			}
			return printJSON(cCtx, quizzes)
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a quiz with its questions",
		ArgsUsage: "<quiz-id>",
		Action: func(cCtx *cli.Context) error {
			q, err := fetchQuiz(cCtx)
			if err != nil {
				return err
			}
			return printJSON(cCtx, q)
		},
	}
}

type revealedAnswer struct {
	Question string      `json:"question"`
	Type     string      `json:"type"`
	Answer   interface{} `json:"answer"`
}

func answersCommand() *cli.Command {
	return &cli.Command{
		Name:      "answers",
		Usage:     "reveal the correct answer of every question",
		ArgsUsage: "<quiz-id>",
		Action: func(cCtx *cli.Context) error {
			q, err := fetchQuiz(cCtx)
			if err != nil {
				return err
			}

			revealed := make([]revealedAnswer, 0, len(q.Questions))
			for _, question := range q.Questions {
				body, err := question.Body()
				if err != nil {
					return err
				}
				entry := revealedAnswer{Question: question.Text, Type: string(question.Type)}
				switch a := body.(type) {
				case quiz.BooleanAnswer:
					entry.Answer = a.Value
				case quiz.InputAnswer:
					entry.Answer = a.Value
				case quiz.CheckboxAnswer:
					entry.Answer = a.Selected
				}
				revealed = append(revealed, entry)
			}
			return printJSON(cCtx, revealed)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a quiz and its questions",
		ArgsUsage: "<quiz-id>",
		Action: func(cCtx *cli.Context) error {
			id, err := quizID(cCtx)
			if err != nil {
				return err
			}
			msg, err := apiClient(cCtx).DeleteQuiz(cCtx.Context, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cCtx.App.Writer, msg)
			return nil
		},
	}
}

func takeCommand() *cli.Command {
	return &cli.Command{
		Name:      "take",
		Usage:     "grade a JSON file of answers keyed by question ID",
		ArgsUsage: "<quiz-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "answers file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "let the API grade the answers",
			},
		},
		Action: func(cCtx *cli.Context) error {
			answers, err := loadAnswers(cCtx.String("answers"))
			if err != nil {
				return err
			}

			if cCtx.Bool("remote") {
				id, err := quizID(cCtx)
				if err != nil {
					return err
				}
				result, err := apiClient(cCtx).GradeQuiz(cCtx.Context, id, answers)
				if err != nil {
					return err
				}
				return printJSON(cCtx, result)
			}

			q, err := fetchQuiz(cCtx)
			if err != nil {
				return err
			}
			if !grading.IsComplete(q, answers) {
				for _, id := range grading.Unanswered(q, answers) {
					fmt.Fprintf(cCtx.App.ErrWriter, "unanswered: %s\n", id)
				}
				return cli.Exit("answer every question before submitting", 1)
			}

			result, err := grading.Score(q, answers)
			if err != nil {
				return err
			}
			return printJSON(cCtx, result)
		},
	}
}

func quizID(cCtx *cli.Context) (string, error) {
	id := cCtx.Args().First()
	if id == "" {
		return "", cli.Exit("quiz id required", 2)
	}
	return id, nil
}

func fetchQuiz(cCtx *cli.Context) (*quiz.Quiz, error) {
	id, err := quizID(cCtx)
	if err != nil {
		return nil, err
	}
	q, err := apiClient(cCtx).GetQuiz(cCtx.Context, id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, cli.Exit(fmt.Sprintf("quiz %s not found", id), 1)
		}
		return nil, err
	}
	return q, nil
}

func loadAnswers(path string) (grading.Answers, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	var answers grading.Answers
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers %s: %w", path, err)
	}
	return answers, nil
}

func printFields(cCtx *cli.Context, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cCtx.App.ErrWriter, "%s: %s\n", k, fields[k])
	}
}

func printJSON(cCtx *cli.Context, v interface{}) error {
	enc := json.NewEncoder(cCtx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
