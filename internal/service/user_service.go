package service

import (
	"context"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID, fullName string) (*models.UserProfile, error)
	SearchUsers(ctx context.Context, query, excludeUserID string, limit, offset int) ([]models.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.followRepo.GetCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		User:         *user,
		FollowCounts: *counts,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, fullName string) (*models.UserProfile, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, fullName); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *userService) SearchUsers(ctx context.Context, query, excludeUserID string, limit, offset int) ([]models.User, error) {
	return s.userRepo.SearchUsers(ctx, query, excludeUserID, limit, offset)
}
