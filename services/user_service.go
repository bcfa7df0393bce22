package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adrianhartanto/cafe-order-app/models"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

// UserService handles the admin accounts behind the /admin routes.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(name, email, password, role string) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, utils.NewConflict("email %s is already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "admin"
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("User registered: %s (%s)", user.Email, user.Role)
	return &user, nil
}

// Login checks the credentials and returns a signed JWT.
func (s *UserService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.NewConflict("invalid email or password")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, utils.NewConflict("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
