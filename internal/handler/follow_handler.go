package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"socialfeed/internal/models"
)

type FollowResponse struct {
	Following bool                `json:"following"`
	Counts    models.FollowCounts `json:"counts"`
}

type UsersGetResponse struct {
	Users      []models.User      `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	followerID, ok := r.Context().Value("userID").(string)
	if !ok || followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followingID := mux.Vars(r)["user_id"]

	counts, err := h.FollowService.Follow(r.Context(), followerID, followingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, FollowResponse{Following: true, Counts: *counts}, http.StatusOK)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	followerID, ok := r.Context().Value("userID").(string)
	if !ok || followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followingID := mux.Vars(r)["user_id"]

	counts, err := h.FollowService.Unfollow(r.Context(), followerID, followingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, FollowResponse{Following: false, Counts: *counts}, http.StatusOK)
}

func (h *Handlers) GetMyFollowing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	h.writeFollowing(w, r, userID)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeFollowing(w, r, mux.Vars(r)["user_id"])
}

func (h *Handlers) writeFollowing(w http.ResponseWriter, r *http.Request, userID string) {
	page, limit, offset := parsePagination(r)

	users, err := h.FollowService.GetFollowing(r.Context(), userID, limit, offset)
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

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["user_id"]
	page, limit, offset := parsePagination(r)

	users, err := h.FollowService.GetFollowers(r.Context(), userID, limit, offset)
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
