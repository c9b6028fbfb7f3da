// Package store holds the query methods for questions and answers. Handlers
// go through these instead of touching gorm directly, and relationships are
// one-directional: an answer holds a foreign key, nothing holds object graphs.
package store

import (
	"errors"
	"math"

	"askstack/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultPageSize is the number of questions per listing page.
const DefaultPageSize = 10

// MinContentLength is the exclusive lower bound for question content, a
// 21-character body is the shortest accepted.
const MinContentLength = 20

// Pagination is the listing metadata handed to the view.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// List returns one page of questions in insertion order plus pagination
// metadata. Pages past the end come back empty, never as an error.
func (s *QuestionStore) List(page, perPage int) ([]models.Question, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var questions []models.Question
	err := s.db.Preload("User").
		Order("id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&questions).Error
	if err != nil {
		logrus.WithError(err).WithField("op", "questions.list").Error("listing query failed")
		return nil, Pagination{}, err
	}

	for i := range questions {
		if questions[i].Tags == nil {
			questions[i].Tags = models.TagList{}
		}
	}
	return questions, NewPagination(page, perPage, total), nil
}

// Get fetches one question or ErrNotFound.
func (s *QuestionStore) Get(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.Preload("User").First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).WithFields(logrus.Fields{"op": "questions.get", "question_id": id}).
			Error("question query failed")
		return nil, err
	}
	if question.Tags == nil {
		question.Tags = models.TagList{}
	}
	return &question, nil
}

// Create persists a new question for the user. Title must be non-empty and
// content longer than MinContentLength.
func (s *QuestionStore) Create(title, content string, tags models.TagList, userID uint) (*models.Question, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(content) <= MinContentLength {
		return nil, ErrContentTooShort
	}
	if tags == nil {
		tags = models.TagList{}
	}

	question := models.Question{
		Title:   title,
		Content: content,
		UserID:  userID,
		Tags:    tags,
	}
	if err := s.db.Create(&question).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"op": "questions.create", "user_id": userID}).
			Error("question insert failed")
		return nil, err
	}
	return &question, nil
}

// ByUser returns the user's own questions, newest first, for the profile page.
func (s *QuestionStore) ByUser(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].Tags == nil {
			questions[i].Tags = models.TagList{}
		}
	}
	return questions, nil
}
