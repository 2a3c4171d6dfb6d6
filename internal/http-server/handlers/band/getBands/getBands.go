package getBands

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/lib/api/exportstatus"
	"tournamentExport/internal/lib/api/response"
	"tournamentExport/internal/lib/logger/sl"
)

type BandsResponse struct {
	response.Response
	Bands []allocation.BandSummary `json:"bands"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BandSummariesGetter
type BandSummariesGetter interface {
	BandSummaries(ctx context.Context) ([]allocation.BandSummary, error)
}

func New(log *slog.Logger, getter BandSummariesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.band.getBands.New"

		log := log.With(slog.String("op", op))

		bands, err := getter.BandSummaries(r.Context())
		if err != nil {
			log.Error("failed to get bands", sl.Err(err))

			status, msg := exportstatus.FromError(err)
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		log.Info("bands retrieved successfully", slog.Int("count", len(bands)))

		responseOK(w, r, bands)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bands []allocation.BandSummary) {
	if bands == nil {
		bands = []allocation.BandSummary{}
	}

	render.JSON(w, r, BandsResponse{
		Response: response.OK(),
		Bands:    bands,
	})
}
