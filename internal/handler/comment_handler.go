package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"socialfeed/internal/models"
)

type CommentsGetResponse struct {
	Comments   []models.Comment   `json:"comments"`
	Pagination PaginationResponse `json:"pagination"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Content string `json:"content" validate:"required,max=1000"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Комментарий не может быть пустым", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), userID, postID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["post_id"]
	page, limit, offset := parsePagination(r)

	comments, err := h.CommentService.GetComments(r.Context(), postID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, CommentsGetResponse{
		Comments: comments,
		Pagination: PaginationResponse{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore(len(comments), limit),
		},
	}, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["comment_id"]

	var req struct {
		Content string `json:"content" validate:"required,max=1000"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Комментарий не может быть пустым", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), commentID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["comment_id"]

	if err := h.CommentService.DeleteComment(r.Context(), commentID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Комментарий успешно удален"}, http.StatusOK)
}
