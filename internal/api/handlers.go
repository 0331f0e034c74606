package api

import (
	"errors"
	"fmt"
	"net/http"

	"ancientsvc/internal/convert"
	"ancientsvc/internal/service"
)

// RefreshResponse represents the response for a dataset refresh request.
type RefreshResponse struct {
	Task string `json:"task" example:"dataset:refresh"`
}

// HandleConvert godoc
// @Summary Convert between modern currency and historical unit equivalents
// @Description Resolves the exchange rate for the requested direction and returns one equivalence result per historical dataset entry, in dataset order. An absent amount defaults to 1; a non-numeric amount is coerced to 0.
// @Tags convert
// @Produce json
// @Param amount query string false "Amount to convert" default(1)
// @Param currency query string false "Currency code (any string, uppercased)" default(USD)
// @Param mode query string false "Conversion direction" Enums(modern-to-historical, historical-to-modern) default(modern-to-historical)
// @Success 200 {object} service.ConversionResponse "Conversion results"
// @Failure 400 {object} ErrorResponse "Unrecognized mode"
// @Failure 502 {object} ErrorResponse "Rate source failed or returned no usable rate"
// @Failure 500 {object} ErrorResponse "Dataset unavailable or internal error"
// @Router /api/convert [get]
func HandleConvert(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Convert(r.Context(), conversionRequestFromQuery(r))
		if err != nil {
			writeConvertError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleConvertText godoc
// @Summary Convert and render results as plain text
// @Description Same computation as /api/convert, rendered through the display formatter: one equivalence sentence per dataset entry.
// @Tags convert
// @Produce plain
// @Param amount query string false "Amount to convert" default(1)
// @Param currency query string false "Currency code (any string, uppercased)" default(USD)
// @Param mode query string false "Conversion direction" Enums(modern-to-historical, historical-to-modern) default(modern-to-historical)
// @Success 200 {string} string "Formatted equivalence lines"
// @Failure 400 {object} ErrorResponse "Unrecognized mode"
// @Failure 502 {object} ErrorResponse "Rate source failed or returned no usable rate"
// @Failure 500 {object} ErrorResponse "Dataset unavailable or internal error"
// @Router /api/convert/text [get]
func HandleConvertText(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Convert(r.Context(), conversionRequestFromQuery(r))
		if err != nil {
			writeConvertError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, res := range resp.Results {
			_, _ = fmt.Fprintf(w, "%s: %s\n", res.Name, convert.FormatResult(res))
		}
	}
}

// HandleDatasetRefresh godoc
// @Summary Request asynchronous dataset cache refresh
// @Description Enqueues a background task that reloads the dataset from its origin source and rewrites the Redis cache. Returns immediately.
// @Tags dataset
// @Produce json
// @Success 202 {object} RefreshResponse "Refresh task accepted"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/dataset/refresh [post]
func HandleDatasetRefresh(svc service.ConversionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RequestDatasetRefresh(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}
		writeJSON(w, http.StatusAccepted, RefreshResponse{Task: service.TaskTypeDatasetRefresh})
	}
}

func conversionRequestFromQuery(r *http.Request) service.ConversionRequest {
	q := r.URL.Query()
	return service.ConversionRequest{
		Amount:   q.Get("amount"),
		Currency: q.Get("currency"),
		Mode:     q.Get("mode"),
	}
}

// writeConvertError maps engine failures onto HTTP statuses: client errors for
// bad modes, bad gateway for upstream rate failures, internal otherwise.
func writeConvertError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, convert.ErrInvalidMode):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrRateUnavailable):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDatasetUnavailable):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
