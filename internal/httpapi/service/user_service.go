package service

import (
	"context"

	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"
)

// UserService covers both admin-driven user management and the
// self-service /me path. The two update entry points differ in exactly one
// way: the admin path may change role, the self path never touches it.
type UserService interface {
	List(ctx context.Context, search string, page, pageSize int) ([]models.User, int64, error)
	Create(ctx context.Context, d dto.CreateUserDTO) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateByUsername(ctx context.Context, username string, d dto.UpdateUserDTO) (*models.User, error)
	DeleteByUsername(ctx context.Context, username string) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateSelf(ctx context.Context, id string, d dto.UpdateUserDTO) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, search string, page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, search, page, pageSize)
}

func (s *userService) Create(ctx context.Context, d dto.CreateUserDTO) (*models.User, error) {
	if err := validateUsername(d.Username); err != nil {
		return nil, err
	}
	role := d.Role
	if role == "" {
		role = models.RoleUser
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Bio:       d.Bio,
		Role:      role,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

func (s *userService) UpdateByUsername(ctx context.Context, username string, d dto.UpdateUserDTO) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(user, d); err != nil {
		return nil, err
	}
	if d.Role != nil {
		if err := validateRole(*d.Role); err != nil {
			return nil, err
		}
		user.Role = *d.Role
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateSelf applies a partial update to the caller's own record. A role
// field in the payload is dropped here no matter who the caller is, which
// keeps privilege self-escalation off this path entirely.
func (s *userService) UpdateSelf(ctx context.Context, id string, d dto.UpdateUserDTO) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(user, d); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) applyUpdate(user *models.User, d dto.UpdateUserDTO) error {
	if d.Username != nil {
		if err := validateUsername(*d.Username); err != nil {
			return err
		}
	}
	d.ApplyTo(user)
	return nil
}
