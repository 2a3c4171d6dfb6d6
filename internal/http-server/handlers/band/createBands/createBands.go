package createBands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"tournamentExport/internal/lib/api/response"
	"tournamentExport/internal/lib/logger/sl"
	"tournamentExport/internal/models"
)

type BandsRequest struct {
	Bands []models.Band `json:"bands" validate:"required,min=1,dive"`
}

type BandsResponse struct {
	response.Response
	Inserted int      `json:"inserted"`
	Skipped  []string `json:"skipped"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BandsCreator
type BandsCreator interface {
	InsertBands(ctx context.Context, bands []models.Band) ([]string, error)
}

func New(log *slog.Logger, creator BandsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.band.createBands.New"

		log := log.With(slog.String("op", op))

		var req BandsRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Int("bands", len(req.Bands)))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if !errors.As(err, &validateErr) {
				log.Error("failed to validate request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid request"))

				return
			}

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		skipped, err := creator.InsertBands(r.Context(), req.Bands)
		if err != nil {
			log.Error("failed to insert bands", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to insert bands"))

			return
		}

		for _, name := range skipped {
			log.Info("band already exists, skipped", slog.String("band", name))
		}

		responseOK(w, r, len(req.Bands)-len(skipped), skipped)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, inserted int, skipped []string) {
	if skipped == nil {
		skipped = []string{}
	}

	render.JSON(w, r, BandsResponse{
		Response: response.OK(),
		Inserted: inserted,
		Skipped:  skipped,
	})
}
