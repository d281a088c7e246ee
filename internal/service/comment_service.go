package service

import (
	"context"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, postID, content string) (*models.Comment, error)
	GetComments(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error)
	UpdateComment(ctx context.Context, commentID, authorID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, authorID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment добавляет комментарий к видимому посту, у которого
// комментарии не отключены автором.
func (s *commentService) CreateComment(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.CommentsEnabled {
		return nil, ErrCommentsDisabled
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComments(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID, limit, offset)
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, authorID, content string) (*models.Comment, error) {
	if err := s.commentRepo.Update(ctx, commentID, authorID, content); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, authorID string) error {
	return s.commentRepo.SoftDelete(ctx, commentID, authorID)
}
