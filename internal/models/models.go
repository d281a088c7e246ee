package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	FullName               string    `json:"fullName" db:"full_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	IsDeleted              bool      `json:"-" db:"is_deleted"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID          string     `json:"postId" db:"post_id"`
	AuthorID        string     `json:"authorId" db:"author_id"`
	Content         *string    `json:"content" db:"content"`
	MediaURL        *string    `json:"mediaUrl" db:"media_url"`
	CommentsEnabled bool       `json:"commentsEnabled" db:"comments_enabled"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty" db:"scheduled_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	IsDeleted       bool       `json:"-" db:"is_deleted"`
}

// IsVisible - пост виден, если он не удален и время отложенной публикации
// не задано либо уже наступило. now всегда в UTC.
func (p *Post) IsVisible(now time.Time) bool {
	if p.IsDeleted {
		return false
	}
	if p.ScheduledAt == nil {
		return true
	}
	return !p.ScheduledAt.After(now)
}

type Follow struct {
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	IsDeleted bool      `json:"-" db:"is_deleted"`
}

// FeedPost - пост вместе с данными для выдачи: счетчики лайков и
// комментариев, а для аутентифицированного зрителя - лайкнул ли он пост и
// подписан ли на автора. Никогда не сохраняется, собирается на каждый запрос.
type FeedPost struct {
	Post
	LikeCount    int   `json:"likeCount"`
	CommentCount int   `json:"commentCount"`
	IsLiked      *bool `json:"isLiked,omitempty"`
	IsFollowing  *bool `json:"isFollowing,omitempty"`
}

type FollowCounts struct {
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
}

type UserProfile struct {
	User
	FollowCounts
}
