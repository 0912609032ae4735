package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// NewExportCmd создаёт команду экспорта резюме.
//
// С --id шаблон и содержимое берутся из сохранённого резюме,
// иначе нужен --template (содержимое пустое).
// Сервер файл не создаёт, команда печатает его ответ.
func NewExportCmd(app *App) *cobra.Command {
	var id, email, template, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Экспорт резюме в PDF/DOCX",
		Long: `Экспорт резюме.

Пример:
  resumectl export --id r1 --format pdf
  resumectl export --template stem-modern --format docx
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.resolveEmail(email)
			if err != nil {
				return err
			}

			c := app.client()
			req := models.ExportRequest{
				Email:    owner,
				Template: template,
				Format:   format,
				Data:     map[string]any{},
			}

			if id != "" {
				list, err := c.ListResumes(owner)
				if err != nil {
					return err
				}
				r, ok := findResume(list, id)
				if !ok {
					return fmt.Errorf("%w: %s", serr.ErrResumeNotFound, id)
				}
				if req.Template == "" {
					req.Template = r.Template
				}
				req.Data = r.Data
			}

			if req.Template == "" {
				return errors.New("either --id or --template is required")
			}

			msg, err := c.Export(req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "resume id to export")
	cmd.Flags().StringVar(&email, "email", "", "owner email (default: from session)")
	cmd.Flags().StringVar(&template, "template", "", "template id (default: from resume)")
	cmd.Flags().StringVar(&format, "format", "pdf", "pdf | docx")

	return cmd
}

func findResume(list []models.Resume, id string) (models.Resume, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resume{}, false
}
