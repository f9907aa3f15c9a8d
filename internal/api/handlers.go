package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/quietseason/internal/catalog"
)

var validate = validator.New()

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	catalog   CrowdCatalog
	estimator CrowdEstimator
	ranker    Recommender
	log       *slog.Logger
	now       func() time.Time
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(c CrowdCatalog, est CrowdEstimator, ranker Recommender, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		catalog:   c,
		estimator: est,
		ranker:    ranker,
		log:       log,
		now:       time.Now,
	}
}

// validationMessage flattens validator errors into one line.
func validationMessage(prefix string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return prefix
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// notFoundOrInternal maps catalog.ErrNotFound to 404 with msg and anything else to 500.
func (h *Handlers) notFoundOrInternal(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, msg)
		return
	}
	h.log.Error("catalog lookup failed", "err", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}
