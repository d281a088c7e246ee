package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"socialfeed/internal/storage"
)

type MediaService interface {
	UploadMedia(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error)
	DeleteMedia(ctx context.Context, userID, objectName string) error
}

type mediaService struct {
	storage storage.Storage
}

func NewMediaService(storage storage.Storage) MediaService {
	return &mediaService{storage: storage}
}

// UploadMedia кладет файл в объектное хранилище и возвращает URL, который
// клиент затем передает в mediaUrl при создании поста.
func (s *mediaService) UploadMedia(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error) {
	_, mediaURL, err := s.storage.UploadMedia(ctx, userID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки медиа в MinIO: %w", err)
	}

	return mediaURL, nil
}

// DeleteMedia удаляет объект из хранилища. Владение проверяется по пути:
// объекты лежат под posts/<userID>/, чужой префикс - отказ.
func (s *mediaService) DeleteMedia(ctx context.Context, userID, objectName string) error {
	if !strings.HasPrefix(objectName, "posts/"+userID+"/") {
		return ErrNotMediaOwner
	}

	if err := s.storage.DeleteMedia(ctx, objectName); err != nil {
		return fmt.Errorf("ошибка удаления медиа из MinIO: %w", err)
	}

	return nil
}
