package service

import (
	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// Категории шаблонов
const (
	CategorySTEM       = "STEM"
	CategoryBusiness   = "Business"
	CategoryHumanities = "Humanities"
)

// catalog: шаблоны, которые умеет рисовать фронтенд.
var catalog = []shared.Template{
	{ID: "stem-modern", Name: "Modern STEM", Category: CategorySTEM},
	{ID: "stem-technical", Name: "Technical STEM", Category: CategorySTEM},
	{ID: "business-professional", Name: "Professional Business", Category: CategoryBusiness},
	{ID: "business-executive", Name: "Executive Business", Category: CategoryBusiness},
	{ID: "humanities-creative", Name: "Creative Humanities", Category: CategoryHumanities},
	{ID: "humanities-academic", Name: "Academic Humanities", Category: CategoryHumanities},
}

// TemplatesService отдаёт каталог шаблонов.
// Поле template у резюме по каталогу не проверяется.
type TemplatesService struct{}

func NewTemplatesService() *TemplatesService {
	return &TemplatesService{}
}

// List возвращает копию каталога, опционально отфильтрованную по категории.
func (s *TemplatesService) List(category string) []shared.Template {
	out := make([]shared.Template, 0, len(catalog))
	for _, t := range catalog {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}
