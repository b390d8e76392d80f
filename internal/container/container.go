package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/quiz-api/internal/cache"
	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/saulo-duarte/quiz-api/internal/events"
	"github.com/saulo-duarte/quiz-api/internal/grading"
	"github.com/saulo-duarte/quiz-api/internal/quiz"
	"github.com/saulo-duarte/quiz-api/internal/router"
)

type Container struct {
	Config           *config.Config
	Cache            cache.Cache
	Publisher        events.Publisher
	QuizContainer    *quiz.QuizContainer
	GradingContainer *grading.GradingContainer
}

func New(ctx context.Context) *Container {
	cfg := config.Load()
	config.InitLogger(cfg.Log)
	log := config.WithContext(ctx)

	if err := config.Connect(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if cfg.DB.AutoMigrate {
		if err := quiz.AutoMigrate(config.DB); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	var c cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, quiz cache disabled")
		} else {
			c = redisClient
		}
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQ)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, quiz events disabled")
		} else {
			publisher = rabbit
		}
	}

	quizContainer := quiz.NewQuizContainer(config.DB, c, publisher, cfg.Redis.TTL)
	gradingContainer := grading.NewGradingContainer(quizContainer.Service)

	return &Container{
		Config:           cfg,
		Cache:            c,
		Publisher:        publisher,
		QuizContainer:    quizContainer,
		GradingContainer: gradingContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		QuizHandler:    c.QuizContainer.Handler,
		GradingHandler: c.GradingContainer.Handler,
		AllowedOrigins: c.Config.Server.AllowedOrigins,
	})
}

func (c *Container) Close() {
	log := config.WithContext(context.Background())
	if err := c.Publisher.Close(); err != nil {
		log.WithError(err).Warn("Failed to close event publisher")
	}
	if err := c.Cache.Close(); err != nil {
		log.WithError(err).Warn("Failed to close cache")
	}
	if err := config.Close(); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
}
