package memory

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ResumesDump: формат локального файла с резюме.
//
// Файл содержит объект вида:
//
//	{ "email": "...", "pulled_at": "...", "resumes": [ ... ] }
type ResumesDump struct {
	Email    string          `json:"email"`
	PulledAt time.Time       `json:"pulled_at"`
	Resumes  []models.Resume `json:"resumes"`
}

// DefaultResumesPath возвращает путь по умолчанию для локального файла резюме:
//
//	$HOME/.resumectl/resumes.json
func DefaultResumesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".resumectl", "resumes.json"), nil
}

// SaveToFile сохраняет содержимое store в JSON-файл.
//
// Поведение:
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - порядок резюме сохраняется.
func SaveToFile(path, email string, store *ResumesStore) error {
	out := ResumesDump{
		Email:    email,
		PulledAt: time.Now().UTC(),
		Resumes:  store.List(),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает резюме из JSON-файла в store и возвращает email из файла.
//
// Поведение:
//   - если файла нет: ошибка (push без файла бессмыслен);
//   - при успешной загрузке содержимое store полностью заменяется.
func LoadFromFile(path string, store *ResumesStore) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var dump ResumesDump
	if err := dec.Decode(&dump); err != nil {
		return "", err
	}

	store.ReplaceAll(dump.Resumes)
	return dump.Email, nil
}
