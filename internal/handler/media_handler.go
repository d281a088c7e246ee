package handlers

import (
	"fmt"
	"net/http"
)

type MediaResponse struct {
	MediaUrl string `json:"mediaUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("media")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
		"video/mp4":  true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP, MP4", http.StatusBadRequest)
		return
	}

	mediaURL, err := h.MediaService.UploadMedia(r.Context(), userID, handler.Filename, file, handler.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MediaResponse{
		MediaUrl: mediaURL,
		FileName: handler.Filename,
		FileSize: handler.Size,
		MimeType: contentType,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	objectName := r.URL.Query().Get("object")
	if objectName == "" {
		WriteError(w, "Отсутствует параметр object", http.StatusBadRequest)
		return
	}

	if err := h.MediaService.DeleteMedia(r.Context(), userID, objectName); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Медиа успешно удалено"}, http.StatusOK)
}
