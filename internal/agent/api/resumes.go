package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// SaveResume отправляет резюме на сервер (upsert по id).
// Возвращает сообщение сервера.
func (c *Client) SaveResume(resume models.Resume) (string, error) {
	var resp models.MessageResponse
	if err := c.PostJSON("/resume/", resume, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListResumes возвращает все резюме пользователя в порядке добавления.
func (c *Client) ListResumes(email string) ([]models.Resume, error) {
	var resp []models.Resume
	if err := c.GetJSON("/resumes/"+url.PathEscape(email), &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = []models.Resume{}
	}
	return resp, nil
}

// Export запрашивает экспорт резюме. Сервер файл не создаёт,
// возвращается только сообщение.
func (c *Client) Export(req models.ExportRequest) (string, error) {
	var resp models.MessageResponse
	if err := c.PostJSON("/export/", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Templates возвращает каталог шаблонов. Пустая category: все шаблоны.
func (c *Client) Templates(category string) ([]models.Template, error) {
	path := "/templates/"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}

	var resp []models.Template
	err := c.GetJSON(path, &resp)
	return resp, err
}

// Health проверяет, что сервер жив.
func (c *Client) Health() (models.HealthResponse, error) {
	var resp models.HealthResponse
	err := c.GetJSON("/healthz", &resp)
	return resp, err
}
