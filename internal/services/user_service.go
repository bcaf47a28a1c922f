package services

import (
	"errors"
	"fmt"

	"personality_sessions_backend/internal/models"
	"personality_sessions_backend/internal/repositories"
)

// --- Custom Service Errors for User ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// --- User DTOs ---

// UpsertUserRequest carries the flat signup/payment payload submitted by the
// landing page. Field names follow the form's camelCase convention.
type UpsertUserRequest struct {
	Email          string            `json:"email" binding:"required"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	Age            *int64            `json:"age"`
	Profession     *string           `json:"profession"`
	Goals          models.StringList `json:"goals"`
	Experience     *string           `json:"experience"`
	AdditionalInfo *string           `json:"additionalInfo"`
	PaymentMethod  *string           `json:"paymentMethod"`
	PaymentAmount  *float64          `json:"paymentAmount"`
	PaymentStatus  string            `json:"paymentStatus"`
	PaymentID      *string           `json:"paymentId"`
	OrderID        *string           `json:"orderId"`
	Signature      *string           `json:"signature"`
	SessionBooked  bool              `json:"sessionBooked"`
	SessionID      *string           `json:"sessionId"`
}

// --- UserService Interface ---
type UserService interface {
	UpsertUser(req UpsertUserRequest) (int64, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers() ([]models.User, error)
}

// --- userService Implementation ---
type userService struct {
	userRepo repositories.UserRepository
	db       repositories.SQLExecutor
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repositories.UserRepository, db repositories.SQLExecutor) UserService {
	return &userService{
		userRepo: repo,
		db:       db,
	}
}

// UpsertUser stores the submission keyed by email: a new lead is inserted,
// a returning one is overwritten in place. Payment status defaults to
// "pending" when the caller leaves it unset.
func (s *userService) UpsertUser(req UpsertUserRequest) (int64, error) {
	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		Phone:          req.Phone,
		Age:            req.Age,
		Profession:     req.Profession,
		Goals:          req.Goals,
		Experience:     req.Experience,
		AdditionalInfo: req.AdditionalInfo,
		PaymentMethod:  req.PaymentMethod,
		PaymentAmount:  req.PaymentAmount,
		PaymentStatus:  req.PaymentStatus,
		PaymentID:      req.PaymentID,
		OrderID:        req.OrderID,
		Signature:      req.Signature,
		SessionBooked:  req.SessionBooked,
		SessionID:      req.SessionID,
	}

	id, err := s.userRepo.UpsertUser(s.db, user)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert user in repository: %w", err)
	}
	return id, nil
}

// GetUserByEmail fetches a single user by exact email match.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUsers fetches all users, newest first.
func (s *userService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}
