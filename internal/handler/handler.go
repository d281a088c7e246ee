package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialfeed/internal/config"
	"socialfeed/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	PostService    service.PostService
	FollowService  service.FollowService
	LikeService    service.LikeService
	CommentService service.CommentService
	MediaService   service.MediaService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		UserService:    services.User,
		PostService:    services.Post,
		FollowService:  services.Follow,
		LikeService:    services.Like,
		CommentService: services.Comment,
		MediaService:   services.Media,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "socialfeed"}, http.StatusOK)
}
