package service

import (
	"context"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type LikeService interface {
	LikePost(ctx context.Context, userID, postID string) (int, error)
	UnlikePost(ctx context.Context, userID, postID string) (int, error)
	GetPostLikers(ctx context.Context, postID string, limit, offset int) ([]models.User, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// LikePost ставит лайк видимому посту и возвращает актуальный счетчик.
// Повторный лайк идемпотентен. Свои посты лайкать можно.
func (s *likeService) LikePost(ctx context.Context, userID, postID string) (int, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	if err := s.likeRepo.Create(ctx, userID, postID); err != nil {
		return 0, err
	}

	return s.likeRepo.CountByPostID(ctx, postID)
}

func (s *likeService) UnlikePost(ctx context.Context, userID, postID string) (int, error) {
	if err := s.likeRepo.Delete(ctx, userID, postID); err != nil {
		return 0, err
	}

	return s.likeRepo.CountByPostID(ctx, postID)
}

func (s *likeService) GetPostLikers(ctx context.Context, postID string, limit, offset int) ([]models.User, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.likeRepo.GetPostLikers(ctx, postID, limit, offset)
}
