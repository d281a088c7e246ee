package service

import (
	"context"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) (*models.FollowCounts, error)
	Unfollow(ctx context.Context, followerID, followingID string) (*models.FollowCounts, error)
	GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetCounts(ctx context.Context, userID string) (*models.FollowCounts, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow создает подписку. Повторная подписка идемпотентна: ребро одно,
// ошибки нет, просто возвращаются актуальные счетчики.
func (s *followService) Follow(ctx context.Context, followerID, followingID string) (*models.FollowCounts, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	// подписка только на существующего пользователя
	if _, err := s.userRepo.GetUserByID(ctx, followingID); err != nil {
		return nil, err
	}

	if err := s.followRepo.Create(ctx, followerID, followingID); err != nil {
		return nil, err
	}

	return s.followRepo.GetCounts(ctx, followingID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) (*models.FollowCounts, error) {
	if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
		return nil, err
	}

	return s.followRepo.GetCounts(ctx, followingID)
}

func (s *followService) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}

func (s *followService) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

func (s *followService) GetCounts(ctx context.Context, userID string) (*models.FollowCounts, error) {
	return s.followRepo.GetCounts(ctx, userID)
}
