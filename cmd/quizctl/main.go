package main

import (
	"fmt"
	"os"

	"github.com/saulo-duarte/quiz-api/internal/client"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "quizctl",
		Usage: "author, browse and take quizzes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "base URL of the quiz API",
				Value:   "http://localhost:8080",
				EnvVars: []string{"QUIZ_API_URL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			config.InitLogger(config.LogConfig{Level: cCtx.String("log-level"), Format: "text"})
			config.Logger.SetOutput(cCtx.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			draftCommand(),
			createCommand(),
			listCommand(),
			showCommand(),
			answersCommand(),
			deleteCommand(),
			takeCommand(),
		},
	}
}

func apiClient(cCtx *cli.Context) *client.Client {
	return client.New(cCtx.String("api-url"))
}
