package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialfeed/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// visibleCond - единый предикат видимости поста. Обязан использоваться в
// каждом запросе чтения постов, чтобы скрытый пост был неотличим от
// несуществующего. Сравнение только по серверному NOW() в UTC.
const visibleCond = `is_deleted = false AND (scheduled_at IS NULL OR scheduled_at <= NOW())`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, content, media_url, comments_enabled, scheduled_at, created_at, is_deleted)
        VALUES
        (:post_id, :author_id, :content, :media_url, :comments_enabled, :scheduled_at, :created_at, :is_deleted)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now().UTC()
	post.IsDeleted = false

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1 AND ` + visibleCond

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE author_id = $1 AND ` + visibleCond + `
        ORDER BY created_at DESC, post_id DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// GetFeed - собственные посты пользователя плюс посты тех, на кого он
// подписан. DISTINCT защищает от дублей при любом состоянии таблицы подписок.
func (r *PostRepositoryImpl) GetFeed(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT DISTINCT p.* FROM posts p
        LEFT JOIN follows f ON f.following_id = p.author_id AND f.follower_id = $1
        WHERE (p.author_id = $1 OR f.follower_id IS NOT NULL)
          AND p.is_deleted = false
          AND (p.scheduled_at IS NULL OR p.scheduled_at <= NOW())
        ORDER BY p.created_at DESC, p.post_id DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

// SoftDelete помечает пост удаленным. Условие по author_id объединяет
// "не найден" и "не автор" в один исход, чтобы не раскрывать чужие посты.
func (r *PostRepositoryImpl) SoftDelete(ctx context.Context, postID, authorID string) error {
	query := `UPDATE posts SET is_deleted = true WHERE post_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
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

// PublishScheduled снимает метку отложенной публикации у всех постов, чье
// время наступило. Одиночный условный UPDATE: повторный запуск просто не
// найдет уже опубликованные посты.
func (r *PostRepositoryImpl) PublishScheduled(ctx context.Context) (int, error) {
	query := `
        UPDATE posts SET scheduled_at = NULL
        WHERE scheduled_at IS NOT NULL AND scheduled_at <= NOW() AND is_deleted = false
    `

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при публикации отложенных постов: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	return int(rowsAffected), nil
}
