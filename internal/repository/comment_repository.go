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

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
        INSERT INTO comments (comment_id, post_id, author_id, content, created_at, updated_at, is_deleted)
        VALUES (:comment_id, :post_id, :author_id, :content, :created_at, :updated_at, :is_deleted)
    `

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comment.IsDeleted = false

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1 AND is_deleted = false`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	query := `
        SELECT * FROM comments
        WHERE post_id = $1 AND is_deleted = false
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3
    `

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

// Update - условие по author_id объединяет "не найден" и "не автор".
func (r *CommentRepositoryImpl) Update(ctx context.Context, commentID, authorID, content string) error {
	query := `
        UPDATE comments SET content = $1, updated_at = NOW()
        WHERE comment_id = $2 AND author_id = $3 AND is_deleted = false
    `

	result, err := r.db.ExecContext(ctx, query, content, commentID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepositoryImpl) SoftDelete(ctx context.Context, commentID, authorID string) error {
	query := `
        UPDATE comments SET is_deleted = true, updated_at = NOW()
        WHERE comment_id = $1 AND author_id = $2 AND is_deleted = false
    `

	result, err := r.db.ExecContext(ctx, query, commentID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
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

func (r *CommentRepositoryImpl) CountByPostID(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1 AND is_deleted = false`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете комментариев: %w", err)
	}

	return count, nil
}
