package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"reviewhub/internal/config"
	"reviewhub/internal/httpapi/apierror"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"
	"reviewhub/internal/mailer"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified caller identity carried in the bearer token.
type Claims struct {
	UserID   string
	Username string
	Role     string
	IsStaff  bool
}

type AuthService interface {
	// Signup registers a username/email pair and mails a confirmation code.
	// Repeating the exact pair rotates the code and resends.
	Signup(ctx context.Context, username, email string) (*models.User, error)
	// IssueToken exchanges a confirmation code for a bearer token.
	IssueToken(ctx context.Context, username, code string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	mail      mailer.Mailer
	logger    *slog.Logger
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	mail mailer.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		mail:      mail,
		logger:    logger,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

func (s *authService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil && !apierror.IsNotFound(err) {
		return nil, err
	}

	if user != nil && user.Email != email {
		return nil, apierror.Validation("username", "username already in use")
	}

	if user == nil {
		// The email must not be bound to another identity either.
		if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
			return nil, apierror.Validation("email", "email already in use")
		} else if !apierror.IsNotFound(err) {
			return nil, err
		}
		user = &models.User{
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
			IsActive: true,
		}
	}

	code := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	user.ConfirmationCodeHash = &hashStr

	if user.ID == "" {
		err = s.userRepo.Create(ctx, user)
	} else {
		err = s.userRepo.Update(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: mail failure never blocks signup.
	go func() {
		if err := s.mail.SendConfirmationCode(context.Background(), email, code); err != nil {
			s.logger.Warn("confirmation mail not delivered", "email", email, "error", err)
		}
	}()

	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// unknown username is NotFound, not a validation failure
		return "", err
	}

	if !user.IsActive {
		return "", apierror.Validation("", "this account is inactive")
	}

	if user.ConfirmationCodeHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.ConfirmationCodeHash), []byte(code)) != nil {
		return "", apierror.Validation("confirmation_code", "invalid confirmation code")
	}

	// Code is one-time: clear it and advance last_login.
	now := time.Now()
	user.LastLogin = &now
	user.ConfirmationCodeHash = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return s.generateToken(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(s.jwtExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := mapClaims["user_id"].(string)
	username, _ := mapClaims["username"].(string)
	role, _ := mapClaims["role"].(string)
	isStaff, _ := mapClaims["is_staff"].(bool)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		IsStaff:  isStaff,
	}, nil
}
