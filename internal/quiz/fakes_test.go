package quiz_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-api/internal/cache"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
)

type memoryRepo struct {
	mu       sync.Mutex
	quizzes  map[uuid.UUID]*quiz.Quiz
	getCalls int
	failWith error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{quizzes: make(map[uuid.UUID]*quiz.Quiz)}
}

func (r *memoryRepo) Create(_ context.Context, q *quiz.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	stored := *q
	stored.Questions = append([]quiz.Question(nil), q.Questions...)
	r.quizzes[q.ID] = &stored
	return nil
}

func (r *memoryRepo) List(context.Context) ([]quiz.QuizSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]quiz.QuizSummary, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		out = append(out, quiz.QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			QuestionCount: len(q.Questions),
			CreatedAt:     q.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	q, ok := r.quizzes[id]
	if !ok {
		return nil, quiz.ErrQuizNotFound
	}
	out := *q
	out.Questions = append([]quiz.Question(nil), q.Questions...)
	return &out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[id]; !ok {
		return quiz.ErrQuizNotFound
	}
	delete(r.quizzes, id)
	return nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memoryCache) Close() error { return nil }

type publishedEvent struct {
	routingKey string
	payload    interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }
