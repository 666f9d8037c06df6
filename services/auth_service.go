package services

import (
	"errors"
	"fmt"
	"strings"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("User already exists with this email")
	ErrEmailInUse         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrMissingCredentials = errors.New("Please provide email and password")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrMissingFields      = errors.New("Please provide name, email, password and phone")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type ProfileInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new customer account. Admin accounts are only ever
// seeded or promoted directly in the database.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)

	if name == "" || email == "" || input.Password == "" || phone == "" {
		return nil, ErrMissingFields
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("db error checking email: %w", err)
	}

	user := models.User{
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  models.RoleUser,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and returns the account.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("db error finding user: %w", err)
	}

	if !user.ComparePassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// UpdateProfile changes the mutable account fields. Blank fields are left
// untouched; an email change re-checks uniqueness.
func (s *AuthService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if email := normalizeEmail(input.Email); email != "" && email != user.Email {
		var existing models.User
		err := s.DB.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return nil, ErrEmailInUse
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("db error checking email: %w", err)
		}
		user.Email = email
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = phone
	}
	if address := strings.TrimSpace(input.Address); address != "" {
		user.Address = address
	}

	if err := s.DB.Save(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
