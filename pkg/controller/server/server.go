package server

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/utils/errutil"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Get("/cards/*", func(w http.ResponseWriter, r *http.Request) {
		postPath := chi.URLParam(r, "*")

		location, err := uc.LookupOrGenerateCard(r.Context(), postPath)
		if err != nil {
			// Bad or absent input is a 404; the renderer and write surface
			// are never reached for those.
			if errors.Is(err, types.ErrInvalidPath) ||
				errors.Is(err, types.ErrContentNotFound) ||
				errors.Is(err, types.ErrInvalidGitHubData) {
				logging.From(r.Context()).Info("card not available",
					slog.String("path", postPath),
					slog.Any("error", err),
				)
				safeWrite(w, http.StatusNotFound, []byte("not found"))
				return
			}

			errutil.HandleError(r.Context(), "fail to resolve card", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		http.Redirect(w, r, location, http.StatusFound)
	})

	generateMissing := func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.GenerateMissingCards(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to generate missing cards", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		// Expected outcomes, including the lock-conflict skip, are reported
		// as 200 with a human-readable summary.
		safeWrite(w, http.StatusOK, []byte(result.String()))
	}
	r.Get("/generate-missing-cards", generateMissing)
	r.Post("/generate-missing-cards", generateMissing)

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
