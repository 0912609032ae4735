// Package errors содержит общие доменные ошибки приложения.
//
// Ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс уже существует
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// тело запроса больше лимита
	ErrPayloadTooLarge = errors.New("payload too large")
	// ожидаемая ошибка (для тестов)
	ErrExpectedError = errors.New("expected error")
	// неожиданная ошибка (для тестов)
	ErrUnexpectedError = errors.New("unexpected error")
)

// доменные ошибки, тексты уходят клиенту в поле detail
var (
	// email уже зарегистрирован
	ErrDuplicateEmail = errors.New("Email already registered")
	// неверный email или пароль, специально не различаем что именно
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	// коллекция резюме для email не создана (не было signup)
	ErrUnknownOwner = errors.New("User not found")
)

// ошибки агента
var (
	// в локальной сессии нет email, нужен signup или login
	ErrNotLoggedIn = errors.New("not logged in: run signup or login first")
	// data резюме должно быть JSON-объектом
	ErrDataNotObject = errors.New("resume data must be a JSON object")
	// резюме с таким id нет в коллекции пользователя
	ErrResumeNotFound = errors.New("resume not found")
)
