package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError сопоставляет ожидаемые ошибки сервисов с HTTP-статусами.
// Все остальное - ошибка хранилища: детали в лог, клиенту общий 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, service.ErrScheduledInPast):
		WriteError(w, "Время отложенной публикации должно быть в будущем", http.StatusBadRequest)
	case errors.Is(err, service.ErrEmptyPost):
		WriteError(w, "Пост должен содержать текст или медиа", http.StatusBadRequest)
	case errors.Is(err, service.ErrSelfFollow):
		WriteError(w, "Нельзя подписаться на самого себя", http.StatusBadRequest)
	case errors.Is(err, service.ErrCommentsDisabled):
		WriteError(w, "Комментарии к посту отключены", http.StatusForbidden)
	case errors.Is(err, service.ErrNotMediaOwner):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, service.ErrUserExists):
		WriteError(w, "Пользователь с таким username или email уже существует", http.StatusBadRequest)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
