package runExport

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

type ExportResponse struct {
	response.Response
	Run *exporter.Result `json:"run,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ExportRunner
type ExportRunner interface {
	Run(ctx context.Context) (*exporter.Result, error)
}

func New(log *slog.Logger, runner ExportRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.runExport.New"

		log := log.With(slog.String("op", op))

		res, err := runner.Run(r.Context())
		if err != nil {
			log.Error("failed to run export", sl.Err(err))

			status, msg := exportstatus.FromError(err)
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		log.Info("export completed",
			slog.String("run_id", res.RunID.String()),
			slog.Int("registrants", res.Registrants),
		)

		responseOK(w, r, res)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, res *exporter.Result) {
	render.JSON(w, r, ExportResponse{
		Response: response.OK(),
		Run:      res,
	})
}
