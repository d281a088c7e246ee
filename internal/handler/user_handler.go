package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type ProfileResponse struct {
	UserResponse
	FollowerCount  int `json:"followerCount"`
	FollowingCount int `json:"followingCount"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	h.writeProfile(w, r, userID)
}

func (h *Handlers) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req struct {
		FullName string `json:"fullName" validate:"required,max=100"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.UpdateProfile(r.Context(), userID, req.FullName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{
		UserResponse:   userResponse(&profile.User),
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
	}, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeProfile(w, r, mux.Vars(r)["user_id"])
}

func (h *Handlers) writeProfile(w http.ResponseWriter, r *http.Request, userID string) {
	profile, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{
		UserResponse:   userResponse(&profile.User),
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
	}, http.StatusOK)
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Отсутствует параметр q", http.StatusBadRequest)
		return
	}

	// из выдачи исключается сам ищущий, если он аутентифицирован
	viewerID, _ := r.Context().Value("userID").(string)
	page, limit, offset := parsePagination(r)

	users, err := h.UserService.SearchUsers(r.Context(), query, viewerID, limit, offset)
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
