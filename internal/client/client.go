// Package client talks to the quiz HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/grading"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateQuiz(ctx context.Context, dto quiz.CreateQuizDTO) (*quiz.Quiz, error) {
	var created quiz.Quiz
	if err := c.do(ctx, http.MethodPost, "/quizzes", dto, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListQuizzes(ctx context.Context) ([]quiz.QuizSummary, error) {
	quizzes := make([]quiz.QuizSummary, 0)
	if err := c.do(ctx, http.MethodGet, "/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) GetQuiz(ctx context.Context, id string) (*quiz.Quiz, error) {
	var q quiz.Quiz
	if err := c.do(ctx, http.MethodGet, "/quizzes/"+url.PathEscape(id), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id string) (string, error) {
	var resp quiz.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/quizzes/"+url.PathEscape(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) GradeQuiz(ctx context.Context, id string, answers grading.Answers) (*grading.Result, error) {
	var result grading.Result
	req := grading.GradeRequest{Answers: answers}
	if err := c.do(ctx, http.MethodPost, "/quizzes/"+url.PathEscape(id)+"/grade", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	log := config.WithContext(ctx)

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debugf("%s %s failed", method, path)
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload config.ErrorResponse
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: "decode " + path, Err: err}
	}
	return nil
}
