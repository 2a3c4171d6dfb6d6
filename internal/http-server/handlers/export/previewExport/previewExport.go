package previewExport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tournamentExport/internal/exporter"
	"tournamentExport/internal/lib/api/exportstatus"
	"tournamentExport/internal/lib/api/response"
	"tournamentExport/internal/lib/logger/sl"
)

type PreviewResponse struct {
	response.Response
	*exporter.Preview
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExportPreviewer
type ExportPreviewer interface {
	Preview(ctx context.Context) (*exporter.Preview, error)
}

func New(log *slog.Logger, previewer ExportPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.previewExport.New"

		log := log.With(slog.String("op", op))

		preview, err := previewer.Preview(r.Context())
		if err != nil {
			log.Error("failed to compute preview", sl.Err(err))

			status, msg := exportstatus.FromError(err)
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		log.Info("preview computed", slog.Int("rows", len(preview.Rows)))

		responseOK(w, r, preview)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, preview *exporter.Preview) {
	render.JSON(w, r, PreviewResponse{
		Response: response.OK(),
		Preview:  preview,
	})
}
