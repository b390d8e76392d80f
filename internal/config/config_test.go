package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/quiz-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "DATABASE_DSN", "REDIS_ADDR", "REDIS_TTL", "RABBITMQ_URL", "RABBITMQ_EXCHANGE", "DB_AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "quizzes", cfg.RabbitMQ.Exchange)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TTL", "not-a-duration")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestConnectionString(t *testing.T) {
	t.Run("DSNWins", func(t *testing.T) {
		db := config.DBConfig{DSN: "postgres://u:p@db:5432/quiz", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@db:5432/quiz", db.ConnectionString())
	})

	t.Run("DiscreteSettings", func(t *testing.T) {
		db := config.DBConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "quiz", SSLMode: "disable"}
		assert.Equal(t, "host=db user=u password=p dbname=quiz port=5433 sslmode=disable TimeZone=UTC", db.ConnectionString())
	})
}
