package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/memory"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// NewResumeCmd создаёт группу команд для работы с резюме:
// save, list, pull, push.
func NewResumeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Сохранение, просмотр и выгрузка резюме",
	}

	cmd.AddCommand(newResumeSaveCmd(app))
	cmd.AddCommand(newResumeListCmd(app))
	cmd.AddCommand(newResumePullCmd(app))
	cmd.AddCommand(newResumePushCmd(app))

	return cmd
}

// parseData разбирает содержимое резюме, это должен быть JSON-объект.
// Числа сохраняются как json.Number, без округления до float64.
func parseData(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse --data: unexpected data after JSON value")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, serr.ErrDataNotObject
	}
	return obj, nil
}

// newResumeSaveCmd: upsert резюме по id.
//
// Если --id не указан, генерируется новый UUID (резюме добавится в конец).
func newResumeSaveCmd(app *App) *cobra.Command {
	var id, email, template, data, dataFile string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Сохранить резюме (upsert по id)",
		Long: `Сохранить резюме. Резюме с тем же id заменяется, новое добавляется в конец.

Пример:
  resumectl resume save --id r1 --template stem-modern --data '{"name":"Ann"}'
  resumectl resume save --id r1 --template stem-modern --data-file ./resume.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.resolveEmail(email)
			if err != nil {
				return err
			}

			raw := []byte(data)
			if dataFile != "" {
				raw, err = os.ReadFile(dataFile)
				if err != nil {
					return err
				}
			}
			body, err := parseData(raw)
			if err != nil {
				return err
			}

			if id == "" {
				id = NewResumeID()
			}

			msg, err := app.client().SaveResume(models.Resume{
				ID:       id,
				Email:    owner,
				Template: template,
				Data:     body,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id=%s)\n", msg, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "resume id (generated if omitted)")
	cmd.Flags().StringVar(&email, "email", "", "owner email (default: from session)")
	cmd.Flags().StringVar(&template, "template", "", "template id, e.g. stem-modern")
	cmd.Flags().StringVar(&data, "data", "{}", "resume content as JSON object")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "read resume content from file")
	cmd.MarkFlagRequired("template")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")

	return cmd
}

func newResumeListCmd(app *App) *cobra.Command {
	var email string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список резюме пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.resolveEmail(email)
			if err != nil {
				return err
			}

			list, err := app.client().ListResumes(owner)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no resumes")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTEMPLATE\tFIELDS")
			for _, r := range list {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", r.ID, r.Template, len(r.Data))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner email (default: from session)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")

	return cmd
}

// newResumePullCmd выгружает все резюме пользователя в локальный файл.
func newResumePullCmd(app *App) *cobra.Command {
	var email, out string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Выгрузить резюме с сервера в файл",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.resolveEmail(email)
			if err != nil {
				return err
			}

			if out == "" {
				out, err = memory.DefaultResumesPath()
				if err != nil {
					return err
				}
			}

			list, err := app.client().ListResumes(owner)
			if err != nil {
				return err
			}

			store := memory.NewResumes()
			store.ReplaceAll(list)

			if err := SaveResumesToFile(out, owner, store); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pulled %d resumes to %s\n", store.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner email (default: from session)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default ~/.resumectl/resumes.json)")

	return cmd
}

// newResumePushCmd загружает резюме из файла (формат pull) на сервер.
//
// Владелец: --email, затем сессия, затем email из файла.
// Резюме отправляются по очереди, чтобы сохранить порядок на сервере.
func newResumePushCmd(app *App) *cobra.Command {
	var email, in string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Загрузить резюме из файла на сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in == "" {
				in, err = memory.DefaultResumesPath()
				if err != nil {
					return err
				}
			}

			store := memory.NewResumes()
			fileEmail, err := LoadResumesFromFile(in, store)
			if err != nil {
				return err
			}

			owner, err := app.resolveEmail(email)
			if err != nil {
				if fileEmail == "" {
					return err
				}
				owner = fileEmail
			}

			c := app.client()
			for _, r := range store.List() {
				r.Email = owner
				if _, err := c.SaveResume(r); err != nil {
					return fmt.Errorf("push %s: %w", r.ID, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d resumes for %s\n", store.Len(), owner)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner email (default: from session, then from file)")
	cmd.Flags().StringVar(&in, "in", "", "input file (default ~/.resumectl/resumes.json)")

	return cmd
}
