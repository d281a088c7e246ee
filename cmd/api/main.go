package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"socialfeed/cmd/app"
	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.HomeHandler)
	router.HandleFunc("/health", handler.HealthHandler)

	router.HandleFunc("/api/auth/register", handler.Register)
	router.HandleFunc("/api/auth/login", handler.Login)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/me", handler.UpdateCurrentUser).Methods(http.MethodPut)
	router.HandleFunc("/api/me/following", handler.GetMyFollowing).Methods(http.MethodGet)
	router.HandleFunc("/api/me/likes", handler.GetMyLikedPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/feed", handler.GetFeed)
	router.HandleFunc("/api/media", handler.UploadMedia).Methods(http.MethodPost)
	router.HandleFunc("/api/media", handler.DeleteMedia).Methods(http.MethodDelete)

	// порядок важен: /api/posts/me до /api/posts/{post_id}
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/me", handler.GetMyPosts)
	router.HandleFunc("/api/posts/{post_id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{post_id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{post_id}/like", handler.LikePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{post_id}/like", handler.UnlikePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{post_id}/likes", handler.GetPostLikers).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{post_id}/comments", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{post_id}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/comments/{comment_id}", handler.UpdateComment).Methods(http.MethodPut)
	router.HandleFunc("/api/comments/{comment_id}", handler.DeleteComment).Methods(http.MethodDelete)

	// и /api/users/search до /api/users/{user_id}
	router.HandleFunc("/api/users/search", handler.SearchUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id}/posts", handler.GetUserPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{user_id}/follow", handler.UnfollowUser).Methods(http.MethodDelete)
	router.HandleFunc("/api/users/{user_id}/following", handler.GetFollowing).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id}/followers", handler.GetFollowers).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Background publication of the scheduled posts
	services.Scheduler.Start()

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		fmt.Printf("Сервер запущен на %s\n", addr)
		fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	// Graceful shutdown: сначала перестаем принимать запросы,
	// потом останавливаем планировщик
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка остановки сервера: %v", err)
	}

	services.Scheduler.Stop()

	log.Println("Сервер остановлен")
}
