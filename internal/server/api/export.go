package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// Export: заглушка экспорта в PDF/DOCX. Файл не создаётся.
//
// @Summary      Export resume (stub)
// @Description  Acknowledges the export request. No file is produced.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        request body models.ExportRequest true "Export request"
// @Success      200 {object} models.MessageResponse
// @Failure      422 {object} models.ErrorResponse "Bad JSON or schema violation"
// @Router       /export/ [post]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var body exportBody
	if !h.decode(w, r, &body) {
		return
	}
	req := body.model()

	msg := h.Svc.Export.Export(r.Context(), req)
	h.Log.Sugar().Infow("export requested", "email", req.Email, "format", req.Format)

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}
