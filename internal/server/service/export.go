package service

import (
	"context"
	"fmt"
	"strings"

	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ExportService: заглушка экспорта. Файл не генерируется,
// формат не проверяется, ответ всегда успешный.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Export возвращает текст подтверждения для запрошенного формата.
func (s *ExportService) Export(_ context.Context, req shared.ExportRequest) string {
	return fmt.Sprintf("Mock export successful for %s.", strings.ToUpper(req.Format))
}
