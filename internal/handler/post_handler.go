package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"socialfeed/internal/models"
	"socialfeed/internal/service"
)

type PaginationResponse struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type PostsGetResponse struct {
	Posts      []models.FeedPost  `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

// parsePagination читает page и limit из query. Страницы с единицы,
// limit зажат в [1, 100], по умолчанию 20.
func parsePagination(r *http.Request) (page, limit, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}

// hasMore - эвристика: полная страница значит, что дальше, скорее всего,
// что-то есть. Отдельный COUNT ради точного признака не делаем.
func hasMore(got, limit int) bool {
	return got == limit
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Content         *string `json:"content"`
		MediaURL        *string `json:"mediaUrl"`
		CommentsEnabled *bool   `json:"commentsEnabled"`
		ScheduledAt     *string `json:"scheduledAt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// комментарии включены, если явно не выключены
	commentsEnabled := true
	if req.CommentsEnabled != nil {
		commentsEnabled = *req.CommentsEnabled
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != nil && *req.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			WriteError(w, "Неверный формат scheduledAt, ожидается RFC3339", http.StatusBadRequest)
			return
		}
		scheduledAt = &t
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID:        authorID,
		Content:         req.Content,
		MediaURL:        req.MediaURL,
		CommentsEnabled: commentsEnabled,
		ScheduledAt:     scheduledAt,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["post_id"]
	viewerID, _ := r.Context().Value("userID").(string)

	post, err := h.PostService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	h.writeAuthorPosts(w, r, userID, userID)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	authorID := mux.Vars(r)["user_id"]
	viewerID, _ := r.Context().Value("userID").(string)

	h.writeAuthorPosts(w, r, authorID, viewerID)
}

func (h *Handlers) writeAuthorPosts(w http.ResponseWriter, r *http.Request, authorID, viewerID string) {
	page, limit, offset := parsePagination(r)

	posts, err := h.PostService.GetPostsByAuthor(r.Context(), authorID, viewerID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, PostsGetResponse{
		Posts: posts,
		Pagination: PaginationResponse{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore(len(posts), limit),
		},
	}, http.StatusOK)
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	page, limit, offset := parsePagination(r)

	posts, err := h.PostService.GetFeed(r.Context(), userID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, PostsGetResponse{
		Posts: posts,
		Pagination: PaginationResponse{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore(len(posts), limit),
		},
	}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["post_id"]

	// чужой пост и несуществующий пост дают одинаковый 404,
	// чтобы не раскрывать существование чужих черновиков
	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост успешно удален"}, http.StatusOK)
}
