package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
	List(ctx context.Context) ([]QuizSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(q).Error; err != nil {
			return err
		}

		if len(q.Questions) == 0 {
			return nil
		}
		for i := range q.Questions {
			q.Questions[i].QuizID = q.ID
		}
		return tx.Create(&q.Questions).Error
	})
}

func (r *quizRepository) List(ctx context.Context) ([]QuizSummary, error) {
	summaries := make([]QuizSummary, 0)
	if err := listQuery(r.db.WithContext(ctx)).Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// listQuery selects one summary row per quiz, newest first.
func listQuery(db *gorm.DB) *gorm.DB {
	return db.
		Model(&Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.created_at, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Group("quizzes.id, quizzes.title, quizzes.created_at").
		Order("quizzes.created_at DESC")
}

func (r *quizRepository) GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// Delete removes the questions and then the quiz in one transaction, so a
// missing quiz or a failure in between leaves the store unchanged.
func (r *quizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteQuizRows(tx, id)
	})
}

func deleteQuizRows(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("quiz_id = ?", id).Delete(&Question{}).Error; err != nil {
		return err
	}

	res := tx.Delete(&Quiz{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quiz{}, &Question{})
}
