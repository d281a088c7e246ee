package service

import (
	"context"
	"time"

	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.FeedPost, error)
	GetPost(ctx context.Context, postID, viewerID string) (*models.FeedPost, error)
	GetPostsByAuthor(ctx context.Context, authorID, viewerID string, limit, offset int) ([]models.FeedPost, error)
	GetFeed(ctx context.Context, viewerID string, limit, offset int) ([]models.FeedPost, error)
	GetLikedPosts(ctx context.Context, userID string, limit, offset int) ([]models.FeedPost, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	PublishScheduled(ctx context.Context) (int, error)
}

type CreatePostRequest struct {
	AuthorID        string
	Content         *string
	MediaURL        *string
	CommentsEnabled bool
	ScheduledAt     *time.Time
}

type postService struct {
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.FeedPost, error) {
	if (req.Content == nil || *req.Content == "") && req.MediaURL == nil {
		return nil, ErrEmptyPost
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != nil {
		// сравнения времени только в UTC, клиентскому "сейчас" не доверяем
		t := req.ScheduledAt.UTC()
		if !t.After(time.Now().UTC()) {
			return nil, ErrScheduledInPast
		}
		scheduledAt = &t
	}

	post := &models.Post{
		AuthorID:        req.AuthorID,
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: req.CommentsEnabled,
		ScheduledAt:     scheduledAt,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return p.enrichPost(ctx, post, req.AuthorID)
}

func (p *postService) GetPost(ctx context.Context, postID, viewerID string) (*models.FeedPost, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// SQL-предикат и IsVisible обязаны совпадать; расхождение - скрытый
	// пост, и наружу он не выходит
	if !post.IsVisible(time.Now().UTC()) {
		return nil, repository.ErrNotFound
	}

	return p.enrichPost(ctx, post, viewerID)
}

func (p *postService) GetPostsByAuthor(ctx context.Context, authorID, viewerID string, limit, offset int) ([]models.FeedPost, error) {
	posts, err := p.postRepo.GetByAuthorID(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}

	return p.enrichPosts(ctx, posts, viewerID)
}

func (p *postService) GetFeed(ctx context.Context, viewerID string, limit, offset int) ([]models.FeedPost, error) {
	posts, err := p.postRepo.GetFeed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}

	return p.enrichPosts(ctx, posts, viewerID)
}

// GetLikedPosts - лайкнутые пользователем посты с тем же обогащением, что и
// лента. Зритель здесь всегда сам пользователь.
func (p *postService) GetLikedPosts(ctx context.Context, userID string, limit, offset int) ([]models.FeedPost, error) {
	posts, err := p.likeRepo.GetLikedPosts(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return p.enrichPosts(ctx, posts, userID)
}

func (p *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	return p.postRepo.SoftDelete(ctx, postID, requesterID)
}

func (p *postService) PublishScheduled(ctx context.Context) (int, error) {
	return p.postRepo.PublishScheduled(ctx)
}

// enrichPost собирает FeedPost: счетчики всегда, признаки зрителя только для
// аутентифицированных запросов. Ошибка любого счетчика - ошибка всего
// запроса: лучше упасть, чем показать нули вместо настоящих цифр.
func (p *postService) enrichPost(ctx context.Context, post *models.Post, viewerID string) (*models.FeedPost, error) {
	likeCount, err := p.likeRepo.CountByPostID(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentCount, err := p.commentRepo.CountByPostID(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	enriched := &models.FeedPost{
		Post:         *post,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}

	if viewerID == "" {
		return enriched, nil
	}

	liked, err := p.likeRepo.Exists(ctx, viewerID, post.PostID)
	if err != nil {
		return nil, err
	}
	enriched.IsLiked = &liked

	if post.AuthorID != viewerID {
		following, err := p.followRepo.Exists(ctx, viewerID, post.AuthorID)
		if err != nil {
			return nil, err
		}
		enriched.IsFollowing = &following
	}

	return enriched, nil
}

func (p *postService) enrichPosts(ctx context.Context, posts []models.Post, viewerID string) ([]models.FeedPost, error) {
	enriched := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		fp, err := p.enrichPost(ctx, &posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, *fp)
	}

	return enriched, nil
}
