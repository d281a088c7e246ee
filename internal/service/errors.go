package service

import "errors"

// Ожидаемые исходы операций. Обработчики сопоставляют их через errors.Is;
// всё, что сюда не попало, считается ошибкой хранилища и наружу не
// детализируется.
var (
	ErrScheduledInPast  = errors.New("время отложенной публикации должно быть строго в будущем")
	ErrSelfFollow       = errors.New("нельзя подписаться на самого себя")
	ErrCommentsDisabled = errors.New("комментарии к посту отключены")
	ErrEmptyPost        = errors.New("пост должен содержать текст или медиа")
	ErrUserExists       = errors.New("пользователь с таким username или email уже существует")
	ErrNotMediaOwner    = errors.New("медиа принадлежит другому пользователю")
)
