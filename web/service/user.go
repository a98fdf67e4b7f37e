package service

import (
	"errors"

	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"
	"nouasseur-portal/util/crypto"

	"gorm.io/gorm"
)

// ErrUserExists is returned when a registration collides with a stored
// username or email.
var ErrUserExists = errors.New("user with this email or username already exists")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user after checking username and email uniqueness.
// The stored password is a bcrypt hash; the plaintext is never persisted.
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	var count int64
	err := s.db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the password for the user whose username OR email
// matches the identifier. It returns nil both for an unknown identifier and
// for a wrong password so callers cannot tell which check failed.
func (s *UserService) Authenticate(identifier, password string) *model.User {
	user := &model.User{}
	err := s.db.Model(&model.User{}).
		Where("username = ? OR email = ?", identifier, identifier).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}
	return user
}

func (s *UserService) List() ([]*model.User, error) {
	var users []*model.User
	err := s.db.Model(&model.User{}).Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) Get(id int) (*model.User, error) {
	user := &model.User{}
	if err := s.db.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Upsert creates the named user or resets its email and password if it
// already exists. Used by the seed-admin bootstrap command.
func (s *UserService) Upsert(username, email, password string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	err = s.db.Model(&model.User{}).Where("username = ?", username).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{Username: username, Email: email, PasswordHash: hash}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		return user, nil
	} else if err != nil {
		return nil, err
	}

	err = s.db.Model(user).
		Updates(map[string]any{"email": email, "password_hash": hash}).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
