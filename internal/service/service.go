package service

import (
	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Post      PostService
	Follow    FollowService
	Like      LikeService
	Comment   CommentService
	Media     MediaService
	Scheduler *Scheduler
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, cfg),
		User:      NewUserService(rep.User, rep.Follow),
		Post:      NewPostService(rep.Post, rep.Follow, rep.Like, rep.Comment),
		Follow:    NewFollowService(rep.Follow, rep.User),
		Like:      NewLikeService(rep.Like, rep.Post),
		Comment:   NewCommentService(rep.Comment, rep.Post),
		Media:     NewMediaService(storage),
		Scheduler: NewScheduler(rep.Post, cfg.SchedulerInterval),
	}
}
