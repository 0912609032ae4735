// Package config содержит функции для работы с локальной сессией CLI-клиента.
//
// Сессия хранит пользователя, под которым выполнен последний signup/login,
// и размещается в домашней директории пользователя в файле:
//
//	~/.resumectl/session.json
//
// Сервер токенов не выдаёт, поэтому в сессии нет секретов кроме email.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// Session: текущий пользователь CLI.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// FromUser заполняет сессию из ответа signup/login.
func FromUser(u models.User) *Session {
	return &Session{UserID: u.ID, Email: u.Email, Name: u.Name}
}

// LoggedIn сообщает, есть ли в сессии email.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Email != ""
}

// DefaultPath возвращает путь к файлу сессии в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.resumectl/session.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".resumectl", "session.json"), nil
}

// Load загружает сессию из указанного файла.
//
// Если файл не существует, возвращает пустую сессию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save сохраняет сессию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600.
func Save(path string, s *Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
