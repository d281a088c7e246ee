package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["post_id"]

	count, err := h.LikeService.LikePost(r.Context(), userID, postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, LikeResponse{Liked: true, LikeCount: count}, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
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

	count, err := h.LikeService.UnlikePost(r.Context(), userID, postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, LikeResponse{Liked: false, LikeCount: count}, http.StatusOK)
}

func (h *Handlers) GetMyLikedPosts(w http.ResponseWriter, r *http.Request) {
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

	posts, err := h.PostService.GetLikedPosts(r.Context(), userID, limit, offset)
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

func (h *Handlers) GetPostLikers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["post_id"]
	page, limit, offset := parsePagination(r)

	users, err := h.LikeService.GetPostLikers(r.Context(), postID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, UsersGetResponse{
		Users: users,
		Pagination: PaginationResponse{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore(len(users), limit),
		},
	}, http.StatusOK)
}
