package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialfeed/internal/models"
)

type LikeRepositoryImpl struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{db: db}
}

// Create ставит лайк. Повторный лайк поглощается ON CONFLICT.
func (r *LikeRepositoryImpl) Create(ctx context.Context, userID, postID string) error {
	query := `
        INSERT INTO likes (user_id, post_id, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (user_id, post_id) DO NOTHING
    `

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при создании лайка: %w", err)
	}

	return nil
}

func (r *LikeRepositoryImpl) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *LikeRepositoryImpl) Exists(ctx context.Context, userID, postID string) (bool, error) {
	query := `SELECT COUNT(*) FROM likes WHERE user_id = $1 AND post_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке лайка: %w", err)
	}

	return count > 0, nil
}

func (r *LikeRepositoryImpl) CountByPostID(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете лайков: %w", err)
	}

	return count, nil
}

func (r *LikeRepositoryImpl) GetPostLikers(ctx context.Context, postID string, limit, offset int) ([]models.User, error) {
	query := `
        SELECT u.user_id, u.username, u.full_name, u.created_at
        FROM likes l
        JOIN users u ON l.user_id = u.user_id
        WHERE l.post_id = $1 AND u.is_deleted = false
        ORDER BY l.created_at DESC
        LIMIT $2 OFFSET $3
    `

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайкнувших: %w", err)
	}

	return users, nil
}

// GetLikedPosts - посты, которые пользователь лайкнул, в порядке лайков.
// Предикат видимости действует и здесь: лайкнутый, но уже скрытый пост
// из выдачи пропадает.
func (r *LikeRepositoryImpl) GetLikedPosts(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT p.* FROM likes l
        JOIN posts p ON l.post_id = p.post_id
        WHERE l.user_id = $1 AND ` + visibleCond + `
        ORDER BY l.created_at DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайкнутых постов: %w", err)
	}

	return posts, nil
}
