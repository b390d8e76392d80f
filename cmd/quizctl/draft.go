package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/saulo-duarte/quiz-api/internal/authoring"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/urfave/cli/v2"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "draft file",
		Required: true,
	}
}

func indexFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "question",
		Aliases:  []string{"q"},
		Usage:    "question index, starting at 0",
		Required: true,
	}
}

func optionFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "option",
		Aliases:  []string{"o"},
		Usage:    "option index, starting at 0",
		Required: true,
	}
}

func draftCommand() *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "edit a quiz draft stored in a JSON file",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "start a draft with one BOOLEAN question",
				Flags: []cli.Flag{fileFlag()},
				Action: func(cCtx *cli.Context) error {
					return saveDraft(cCtx.String("file"), authoring.NewDraft())
				},
			},
			{
				Name:      "set-title",
				ArgsUsage: "<title>",
				Flags:     []cli.Flag{fileFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.SetTitle{Title: cCtx.Args().First()}, nil
				}),
			},
			{
				Name:  "add-question",
				Flags: []cli.Flag{fileFlag()},
				Action: editDraft(func(*cli.Context, authoring.Draft) (authoring.Action, error) {
					return authoring.AddQuestion{}, nil
				}),
			},
			{
				Name:  "remove-question",
				Flags: []cli.Flag{fileFlag(), indexFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.RemoveQuestion{Index: cCtx.Int("question")}, nil
				}),
			},
			{
				Name:      "set-type",
				ArgsUsage: "<BOOLEAN|INPUT|CHECKBOX>",
				Flags:     []cli.Flag{fileFlag(), indexFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					t := quiz.QuestionType(strings.ToUpper(cCtx.Args().First()))
					if !t.IsValid() {
						return nil, fmt.Errorf("unknown question type %q", cCtx.Args().First())
					}
					return authoring.SetType{Index: cCtx.Int("question"), Type: t}, nil
				}),
			},
			{
				Name:      "set-text",
				ArgsUsage: "<text>",
				Flags:     []cli.Flag{fileFlag(), indexFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.SetText{Index: cCtx.Int("question"), Text: cCtx.Args().First()}, nil
				}),
			},
			{
				Name:      "set-answer",
				Usage:     "set the answer of a BOOLEAN or INPUT question",
				ArgsUsage: "<value>",
				Flags:     []cli.Flag{fileFlag(), indexFlag()},
				Action:    editDraft(setAnswerAction),
			},
			{
				Name:  "add-option",
				Flags: []cli.Flag{fileFlag(), indexFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.AddOption{Index: cCtx.Int("question")}, nil
				}),
			},
			{
				Name:      "set-option",
				ArgsUsage: "<text>",
				Flags:     []cli.Flag{fileFlag(), indexFlag(), optionFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.SetOption{
						Index:  cCtx.Int("question"),
						Option: cCtx.Int("option"),
						Value:  cCtx.Args().First(),
					}, nil
				}),
			},
			{
				Name:  "toggle-answer",
				Usage: "mark or unmark a CHECKBOX option as correct",
				Flags: []cli.Flag{fileFlag(), indexFlag(), optionFlag()},
				Action: editDraft(func(cCtx *cli.Context, d authoring.Draft) (authoring.Action, error) {
					index, option := cCtx.Int("question"), cCtx.Int("option")
					if index < 0 || index >= len(d.Questions) {
						return nil, fmt.Errorf("question %d does not exist", index)
					}
					options := d.Questions[index].Options
					if option < 0 || option >= len(options) {
						return nil, fmt.Errorf("option %d does not exist", option)
					}
					return authoring.ToggleAnswer{Index: index, Option: options[option]}, nil
				}),
			},
			{
				Name:  "remove-option",
				Flags: []cli.Flag{fileFlag(), indexFlag(), optionFlag()},
				Action: editDraft(func(cCtx *cli.Context, _ authoring.Draft) (authoring.Action, error) {
					return authoring.RemoveOption{Index: cCtx.Int("question"), Option: cCtx.Int("option")}, nil
				}),
			},
			{
				Name:  "show",
				Flags: []cli.Flag{fileFlag()},
				Action: func(cCtx *cli.Context) error {
					d, err := loadDraft(cCtx.String("file"))
					if err != nil {
						return err
					}
					return printJSON(cCtx, d)
				},
			},
		},
	}
}

func setAnswerAction(cCtx *cli.Context, d authoring.Draft) (authoring.Action, error) {
	index := cCtx.Int("question")
	if index < 0 || index >= len(d.Questions) {
		return nil, fmt.Errorf("question %d does not exist", index)
	}

	value := cCtx.Args().First()
	switch d.Questions[index].Type {
	case quiz.QuestionTypeBoolean:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("answer must be true or false: %w", err)
		}
		return authoring.SetBooleanAnswer{Index: index, Value: b}, nil
	case quiz.QuestionTypeInput:
		return authoring.SetInputAnswer{Index: index, Value: value}, nil
	default:
		return nil, fmt.Errorf("question %d is a %s question, use toggle-answer", index, d.Questions[index].Type)
	}
}

func editDraft(build func(*cli.Context, authoring.Draft) (authoring.Action, error)) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		path := cCtx.String("file")
		d, err := loadDraft(path)
		if err != nil {
			return err
		}
		action, err := build(cCtx, d)
		if err != nil {
			return err
		}
		return saveDraft(path, authoring.Reduce(d, action))
	}
}

func loadDraft(path string) (authoring.Draft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return authoring.Draft{}, fmt.Errorf("failed to read draft: %w", err)
	}
	var d authoring.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return authoring.Draft{}, fmt.Errorf("failed to decode draft %s: %w", path, err)
	}
	return d, nil
}

func saveDraft(path string, d authoring.Draft) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}
