package auth

import (
	"errors"
	"strings"

	"askstack/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultRole is assigned to every account created through signup.
const DefaultRole = "standard"

// Service handles credential checks and account creation. It is constructed
// once at startup and handed to the handlers, there are no package globals.
type Service struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewService(db *gorm.DB, jwtSecret string) *Service {
	return &Service{db: db, jwtSecret: []byte(jwtSecret)}
}

// Login looks the user up by email first, then by username, and verifies the
// password against the stored bcrypt hash.
func (s *Service) Login(identifier, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("username = ?", identifier).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		logrus.WithError(err).WithField("op", "auth.login").Error("user lookup failed")
		return nil, err
	}

	ok, err := CheckPasswordHash(password, user.Password)
	if err != nil {
		// Stored hash is unreadable. Log it, but the caller shows the
		// same generic message as a wrong password.
		logrus.WithFields(logrus.Fields{"op": "auth.login", "user_id": user.ID}).
			Warn("stored password hash is malformed")
		return nil, ErrHashFormat
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Signup hashes the password and inserts the account. Uniqueness of username
// and email is enforced by the database; a violation maps to ErrDuplicateUser
// and leaves no new row behind.
func (s *Service) Signup(username, email, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		logrus.WithError(err).WithField("op", "auth.signup").Error("password hashing failed")
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     DefaultRole,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateUser
		}
		logrus.WithError(err).WithField("op", "auth.signup").Error("user insert failed")
		return nil, err
	}
	return &user, nil
}

// The two drivers report unique violations differently, so match the GORM
// sentinel and the raw messages.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
