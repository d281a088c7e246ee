package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialfeed/internal/models"
)

type FollowRepositoryImpl struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepositoryImpl {
	return &FollowRepositoryImpl{db: db}
}

// Create создает подписку. ON CONFLICT DO NOTHING: повторная подписка (в том
// числе две одновременные) не ошибка и не создает дубль ребра.
func (r *FollowRepositoryImpl) Create(ctx context.Context, followerID, followingID string) error {
	query := `
        INSERT INTO follows (follower_id, following_id, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (follower_id, following_id) DO NOTHING
    `

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *FollowRepositoryImpl) Delete(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
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

func (r *FollowRepositoryImpl) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND following_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepositoryImpl) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	query := `
        SELECT u.user_id, u.username, u.full_name, u.created_at
        FROM follows f
        JOIN users u ON f.following_id = u.user_id
        WHERE f.follower_id = $1 AND u.is_deleted = false
        ORDER BY f.created_at DESC
        LIMIT $2 OFFSET $3
    `

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return users, nil
}

func (r *FollowRepositoryImpl) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	query := `
        SELECT u.user_id, u.username, u.full_name, u.created_at
        FROM follows f
        JOIN users u ON f.follower_id = u.user_id
        WHERE f.following_id = $1 AND u.is_deleted = false
        ORDER BY f.created_at DESC
        LIMIT $2 OFFSET $3
    `

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return users, nil
}

func (r *FollowRepositoryImpl) GetCounts(ctx context.Context, userID string) (*models.FollowCounts, error) {
	var counts models.FollowCounts

	err := r.db.GetContext(ctx, &counts.FollowerCount,
		`SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете подписчиков: %w", err)
	}

	err = r.db.GetContext(ctx, &counts.FollowingCount,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете подписок: %w", err)
	}

	return &counts, nil
}
