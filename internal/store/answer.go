package store

import (
	"errors"

	"askstack/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AnswerStore struct {
	db *gorm.DB
}

func NewAnswerStore(db *gorm.DB) *AnswerStore {
	return &AnswerStore{db: db}
}

// Create persists an answer bound to an existing question. The question
// lookup and the insert run in one transaction; any write failure rolls the
// whole thing back. The question's total_answers counter is intentionally
// not touched, matching the behavior the schema was reviewed with.
func (s *AnswerStore) Create(questionID uint, content string, userID uint) (*models.Answer, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	var answer models.Answer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		answer = models.Answer{
			Content:    content,
			QuestionID: question.ID,
			UserID:     userID,
		}
		return tx.Create(&answer).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"op":          "answers.create",
				"question_id": questionID,
				"user_id":     userID,
			}).Error("answer write rolled back")
		}
		return nil, err
	}
	return &answer, nil
}

// ForQuestion returns a question's answers oldest first.
func (s *AnswerStore) ForQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Preload("User").
		Where("question_id = ?", questionID).
		Order("created_at ASC, id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
