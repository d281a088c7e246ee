package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"socialfeed/internal/models"
)

// ErrNotFound - запись отсутствует, скрыта или принадлежит другому
// пользователю. Для постов эти случаи намеренно неотличимы: чужой скрытый
// пост не должен выдавать сам факт своего существования.
var ErrNotFound = errors.New("запись не найдена")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	SearchUsers(ctx context.Context, query, excludeUserID string, limit, offset int) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error)
	GetFeed(ctx context.Context, userID string, limit, offset int) ([]models.Post, error)
	SoftDelete(ctx context.Context, postID, authorID string) error
	PublishScheduled(ctx context.Context) (int, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetCounts(ctx context.Context, userID string) (*models.FollowCounts, error)
}

type LikeRepository interface {
	Create(ctx context.Context, userID, postID string) error
	Delete(ctx context.Context, userID, postID string) error
	Exists(ctx context.Context, userID, postID string) (bool, error)
	CountByPostID(ctx context.Context, postID string) (int, error)
	GetPostLikers(ctx context.Context, postID string, limit, offset int) ([]models.User, error)
	GetLikedPosts(ctx context.Context, userID string, limit, offset int) ([]models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error)
	Update(ctx context.Context, commentID, authorID, content string) error
	SoftDelete(ctx context.Context, commentID, authorID string) error
	CountByPostID(ctx context.Context, postID string) (int, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Follow  FollowRepository
	Like    LikeRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Follow:  NewFollowRepository(db),
		Like:    NewLikeRepository(db),
		Comment: NewCommentRepository(db),
	}
}
