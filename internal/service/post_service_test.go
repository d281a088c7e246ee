package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
)

func newPostServiceMocks() (*MockPostRepository, *MockFollowRepository, *MockLikeRepository, *MockCommentRepository, PostService) {
	postRepo := new(MockPostRepository)
	followRepo := new(MockFollowRepository)
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)
	svc := NewPostService(postRepo, followRepo, likeRepo, commentRepo)
	return postRepo, followRepo, likeRepo, commentRepo, svc
}

func strPtr(s string) *string { return &s }

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание текстового поста", func(t *testing.T) {
		postRepo, _, likeRepo, commentRepo, svc := newPostServiceMocks()

		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).Return(nil)
		likeRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		commentRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		likeRepo.On("Exists", ctx, "user-1", mock.AnythingOfType("string")).Return(false, nil)

		post, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID:        "user-1",
			Content:         strPtr("привет"),
			CommentsEnabled: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", post.AuthorID)
		assert.Nil(t, post.ScheduledAt)
		assert.Equal(t, 0, post.LikeCount)
		// автор сам себе не "подписчик"
		assert.Nil(t, post.IsFollowing)
		postRepo.AssertExpectations(t)
	})

	t.Run("Пустой пост без текста и медиа", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		_, err := svc.CreatePost(ctx, CreatePostRequest{AuthorID: "user-1"})

		assert.ErrorIs(t, err, ErrEmptyPost)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Пустая строка контента тоже пустой пост", func(t *testing.T) {
		_, _, _, _, svc := newPostServiceMocks()

		_, err := svc.CreatePost(ctx, CreatePostRequest{AuthorID: "user-1", Content: strPtr("")})

		assert.ErrorIs(t, err, ErrEmptyPost)
	})

	t.Run("Пост только с медиа допустим", func(t *testing.T) {
		postRepo, _, likeRepo, commentRepo, svc := newPostServiceMocks()

		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).Return(nil)
		likeRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		commentRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		likeRepo.On("Exists", ctx, "user-1", mock.AnythingOfType("string")).Return(false, nil)

		post, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID: "user-1",
			MediaURL: strPtr("http://localhost:9000/media/posts/user-1/x.png"),
		})

		require.NoError(t, err)
		assert.Nil(t, post.Content)
		require.NotNil(t, post.MediaURL)
	})

	t.Run("Отложенная публикация в прошлом отклоняется", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		past := time.Now().Add(-time.Minute)
		_, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID:    "user-1",
			Content:     strPtr("слишком поздно"),
			ScheduledAt: &past,
		})

		assert.ErrorIs(t, err, ErrScheduledInPast)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Текущий момент тоже не будущее", func(t *testing.T) {
		_, _, _, _, svc := newPostServiceMocks()

		now := time.Now().Add(-time.Millisecond)
		_, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID:    "user-1",
			Content:     strPtr("ровно сейчас"),
			ScheduledAt: &now,
		})

		assert.ErrorIs(t, err, ErrScheduledInPast)
	})

	t.Run("Отложенная публикация в будущем нормализуется в UTC", func(t *testing.T) {
		postRepo, _, likeRepo, commentRepo, svc := newPostServiceMocks()

		var saved *models.Post
		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Post) }).
			Return(nil)
		likeRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		commentRepo.On("CountByPostID", ctx, mock.AnythingOfType("string")).Return(0, nil)
		likeRepo.On("Exists", ctx, "user-1", mock.AnythingOfType("string")).Return(false, nil)

		loc := time.FixedZone("MSK", 3*60*60)
		future := time.Now().In(loc).Add(2 * time.Hour)

		post, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID:    "user-1",
			Content:     strPtr("позже"),
			ScheduledAt: &future,
		})

		require.NoError(t, err)
		require.NotNil(t, saved.ScheduledAt)
		assert.Equal(t, time.UTC, saved.ScheduledAt.Location())
		assert.True(t, saved.ScheduledAt.Equal(future))
		require.NotNil(t, post.ScheduledAt)
	})

	t.Run("Ошибка хранилища при создании", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).
			Return(errors.New("db down"))

		_, err := svc.CreatePost(ctx, CreatePostRequest{
			AuthorID: "user-1",
			Content:  strPtr("текст"),
		})

		assert.Error(t, err)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()

	post := &models.Post{
		PostID:          "post-1",
		AuthorID:        "author-1",
		Content:         strPtr("текст"),
		CommentsEnabled: true,
	}

	t.Run("Анонимный зритель получает только счетчики", func(t *testing.T) {
		postRepo, followRepo, likeRepo, commentRepo, svc := newPostServiceMocks()

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		likeRepo.On("CountByPostID", ctx, "post-1").Return(3, nil)
		commentRepo.On("CountByPostID", ctx, "post-1").Return(2, nil)

		fp, err := svc.GetPost(ctx, "post-1", "")

		require.NoError(t, err)
		assert.Equal(t, 3, fp.LikeCount)
		assert.Equal(t, 2, fp.CommentCount)
		assert.Nil(t, fp.IsLiked)
		assert.Nil(t, fp.IsFollowing)
		likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
		followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Аутентифицированный зритель получает признаки", func(t *testing.T) {
		postRepo, followRepo, likeRepo, commentRepo, svc := newPostServiceMocks()

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		likeRepo.On("CountByPostID", ctx, "post-1").Return(3, nil)
		commentRepo.On("CountByPostID", ctx, "post-1").Return(2, nil)
		likeRepo.On("Exists", ctx, "viewer-1", "post-1").Return(true, nil)
		followRepo.On("Exists", ctx, "viewer-1", "author-1").Return(false, nil)

		fp, err := svc.GetPost(ctx, "post-1", "viewer-1")

		require.NoError(t, err)
		require.NotNil(t, fp.IsLiked)
		assert.True(t, *fp.IsLiked)
		require.NotNil(t, fp.IsFollowing)
		assert.False(t, *fp.IsFollowing)
	})

	t.Run("Для собственного поста признак подписки не считается", func(t *testing.T) {
		postRepo, followRepo, likeRepo, commentRepo, svc := newPostServiceMocks()

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		likeRepo.On("CountByPostID", ctx, "post-1").Return(0, nil)
		commentRepo.On("CountByPostID", ctx, "post-1").Return(0, nil)
		likeRepo.On("Exists", ctx, "author-1", "post-1").Return(false, nil)

		fp, err := svc.GetPost(ctx, "post-1", "author-1")

		require.NoError(t, err)
		assert.Nil(t, fp.IsFollowing)
		followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Невидимый пост", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		postRepo.On("GetByID", ctx, "hidden").Return(nil, repository.ErrNotFound)

		_, err := svc.GetPost(ctx, "hidden", "viewer-1")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Еще не опубликованный пост не выходит из сервиса", func(t *testing.T) {
		postRepo, _, likeRepo, _, svc := newPostServiceMocks()

		// хранилище по какой-то причине вернуло пост с будущим
		// scheduled_at: предикат в сервисе обязан его остановить
		future := time.Now().UTC().Add(time.Hour)
		postRepo.On("GetByID", ctx, "post-1").Return(&models.Post{
			PostID:      "post-1",
			AuthorID:    "author-1",
			Content:     strPtr("рано"),
			ScheduledAt: &future,
		}, nil)

		_, err := svc.GetPost(ctx, "post-1", "viewer-1")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		likeRepo.AssertNotCalled(t, "CountByPostID", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка счетчика лайков фатальна для запроса", func(t *testing.T) {
		postRepo, _, likeRepo, _, svc := newPostServiceMocks()

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		likeRepo.On("CountByPostID", ctx, "post-1").Return(0, errors.New("db down"))

		_, err := svc.GetPost(ctx, "post-1", "")

		assert.Error(t, err)
	})
}

func TestPostService_GetFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Лента обогащается по каждому посту", func(t *testing.T) {
		postRepo, followRepo, likeRepo, commentRepo, svc := newPostServiceMocks()

		posts := []models.Post{
			{PostID: "p1", AuthorID: "viewer-1"},
			{PostID: "p2", AuthorID: "friend-1"},
		}
		postRepo.On("GetFeed", ctx, "viewer-1", 20, 0).Return(posts, nil)
		likeRepo.On("CountByPostID", ctx, "p1").Return(1, nil)
		likeRepo.On("CountByPostID", ctx, "p2").Return(5, nil)
		commentRepo.On("CountByPostID", ctx, "p1").Return(0, nil)
		commentRepo.On("CountByPostID", ctx, "p2").Return(7, nil)
		likeRepo.On("Exists", ctx, "viewer-1", "p1").Return(false, nil)
		likeRepo.On("Exists", ctx, "viewer-1", "p2").Return(true, nil)
		followRepo.On("Exists", ctx, "viewer-1", "friend-1").Return(true, nil)

		feed, err := svc.GetFeed(ctx, "viewer-1", 20, 0)

		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Nil(t, feed[0].IsFollowing)
		require.NotNil(t, feed[1].IsFollowing)
		assert.True(t, *feed[1].IsFollowing)
		assert.Equal(t, 5, feed[1].LikeCount)
	})

	t.Run("Пустая лента", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		postRepo.On("GetFeed", ctx, "viewer-1", 20, 0).Return([]models.Post{}, nil)

		feed, err := svc.GetFeed(ctx, "viewer-1", 20, 0)

		require.NoError(t, err)
		assert.Empty(t, feed)
	})
}

func TestPostService_GetLikedPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Лайкнутые посты обогащаются как лента", func(t *testing.T) {
		_, followRepo, likeRepo, commentRepo, svc := newPostServiceMocks()

		posts := []models.Post{
			{PostID: "p1", AuthorID: "viewer-1"},
			{PostID: "p2", AuthorID: "friend-1"},
		}
		likeRepo.On("GetLikedPosts", ctx, "viewer-1", 20, 0).Return(posts, nil)
		likeRepo.On("CountByPostID", ctx, "p1").Return(1, nil)
		likeRepo.On("CountByPostID", ctx, "p2").Return(4, nil)
		commentRepo.On("CountByPostID", ctx, "p1").Return(0, nil)
		commentRepo.On("CountByPostID", ctx, "p2").Return(2, nil)
		likeRepo.On("Exists", ctx, "viewer-1", "p1").Return(true, nil)
		likeRepo.On("Exists", ctx, "viewer-1", "p2").Return(true, nil)
		followRepo.On("Exists", ctx, "viewer-1", "friend-1").Return(false, nil)

		liked, err := svc.GetLikedPosts(ctx, "viewer-1", 20, 0)

		require.NoError(t, err)
		require.Len(t, liked, 2)
		require.NotNil(t, liked[0].IsLiked)
		assert.True(t, *liked[0].IsLiked)
		// собственный пост без признака подписки
		assert.Nil(t, liked[0].IsFollowing)
		require.NotNil(t, liked[1].IsFollowing)
		assert.False(t, *liked[1].IsFollowing)
		assert.Equal(t, 4, liked[1].LikeCount)
	})

	t.Run("Ошибка хранилища", func(t *testing.T) {
		_, _, likeRepo, _, svc := newPostServiceMocks()

		likeRepo.On("GetLikedPosts", ctx, "viewer-1", 20, 0).
			Return(nil, errors.New("db down"))

		_, err := svc.GetLikedPosts(ctx, "viewer-1", 20, 0)

		assert.Error(t, err)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаление своего поста", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		postRepo.On("SoftDelete", ctx, "post-1", "author-1").Return(nil)

		err := svc.DeletePost(ctx, "post-1", "author-1")

		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("Чужой пост неотличим от несуществующего", func(t *testing.T) {
		postRepo, _, _, _, svc := newPostServiceMocks()

		postRepo.On("SoftDelete", ctx, "post-1", "intruder").Return(repository.ErrNotFound)

		err := svc.DeletePost(ctx, "post-1", "intruder")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
