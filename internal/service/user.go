package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/repository"
)

const (
	defaultPageSize int32 = 20
	maxPageSize     int32 = 100
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	limit, offset := paginate(page, pageSize)
	users, total, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, &PersistenceError{Op: "list users", Err: err}
	}
	return users, total, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string, limit int32) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	limit, _ = paginate(1, limit)
	users, err := s.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "search users", Err: err}
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "get user", Err: err}
	}
	return u, nil
}

// paginate turns a 1-based page into limit/offset, clamping the page size.
func paginate(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
