package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-api/internal/cache"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/events"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]QuizSummary, error)
	GetQuiz(ctx context.Context, id string) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
}

type quizService struct {
	repo      QuizRepository
	cache     cache.Cache
	publisher events.Publisher
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewService(repo QuizRepository, c cache.Cache, publisher events.Publisher, cacheTTL time.Duration) QuizService {
	if c == nil {
		c = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &quizService{
		repo:      repo,
		cache:     c,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

func parseUUID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).WithField("quiz_id", id).Warn("Invalid quiz ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func cacheKey(id uuid.UUID) string {
	return "quiz:" + id.String()
}

func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	quiz, err := Validate(dto)
	if err != nil {
		log.WithError(err).Warn("Rejected invalid quiz submission")
		return nil, err
	}

	quiz.ID = uuid.New()
	quiz.CreatedAt = s.now().UTC()
	for i := range quiz.Questions {
		quiz.Questions[i].ID = uuid.New()
		quiz.Questions[i].QuizID = quiz.ID
	}

	if err := s.repo.Create(ctx, quiz); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	s.publish(ctx, log, events.QuizCreated, events.QuizEvent{
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		OccurredAt:    quiz.CreatedAt,
	})

	log.WithFields(logrus.Fields{
		"quiz_id":   quiz.ID,
		"questions": len(quiz.Questions),
	}).Info("Quiz created successfully")
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id string) (*Quiz, error) {
	log := config.WithContext(ctx)

	quizID, err := parseUUID(log, id)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.fromCache(ctx, log, quizID); ok {
		return cached, nil
	}

	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			log.WithField("quiz_id", id).Warn("Quiz not found")
			return nil, ErrQuizNotFound
		}
		log.WithError(err).Error("Error finding quiz by ID")
		return nil, err
	}
	if quiz.Questions == nil {
		quiz.Questions = []Question{}
	}

	s.toCache(ctx, log, quiz)
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	quizID, err := parseUUID(log, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, quizID); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			log.WithField("quiz_id", id).Warn("Quiz not found for deletion")
			return ErrQuizNotFound
		}
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	if err := s.cache.Delete(ctx, cacheKey(quizID)); err != nil {
		log.WithError(err).Warn("Failed to evict deleted quiz from cache")
	}

	s.publish(ctx, log, events.QuizDeleted, events.QuizEvent{
		QuizID:     quizID,
		OccurredAt: s.now().UTC(),
	})

	log.WithField("quiz_id", id).Info("Quiz deleted successfully")
	return nil
}

func (s *quizService) fromCache(ctx context.Context, log logrus.FieldLogger, id uuid.UUID) (*Quiz, bool) {
	raw, err := s.cache.Get(ctx, cacheKey(id))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.WithError(err).Warn("Failed to read quiz from cache")
		}
		return nil, false
	}

	var quiz Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		log.WithError(err).Warn("Discarding undecodable cached quiz")
		return nil, false
	}
	if quiz.Questions == nil {
		quiz.Questions = []Question{}
	}
	for i := range quiz.Questions {
		quiz.Questions[i].QuizID = quiz.ID
		quiz.Questions[i].Position = i
	}
	return &quiz, true
}

func (s *quizService) toCache(ctx context.Context, log logrus.FieldLogger, quiz *Quiz) {
	raw, err := json.Marshal(quiz)
	if err != nil {
		log.WithError(err).Warn("Failed to encode quiz for cache")
		return
	}
	if err := s.cache.Set(ctx, cacheKey(quiz.ID), raw, s.cacheTTL); err != nil {
		log.WithError(err).Warn("Failed to write quiz to cache")
	}
}

func (s *quizService) publish(ctx context.Context, log logrus.FieldLogger, routingKey string, event events.QuizEvent) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.WithError(err).WithField("event", routingKey).Warn("Failed to publish quiz event")
	}
}
