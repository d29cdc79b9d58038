package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/de-tools/data-explain/pkg/adapters"
	"github.com/de-tools/data-explain/pkg/models/api"
	"github.com/de-tools/data-explain/pkg/models/domain"
	"github.com/de-tools/data-explain/pkg/services/render"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxDocumentSize = 8 << 20

// Renderer produces reports for the handler.
type Renderer interface {
	Registry() report.Registry
	Render(ctx context.Context, req render.Request, w io.Writer) error
}

type Handler struct {
	renderer      Renderer
	insertHeaders bool
}

// NewHandler creates the report handler. insertHeaders is used when a request
// has no headers query parameter.
func NewHandler(renderer Renderer, insertHeaders bool) *Handler {
	return &Handler{
		renderer:      renderer,
		insertHeaders: insertHeaders,
	}
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	registry := h.renderer.Registry()

	response := make([]api.Format, 0)
	for _, name := range registry.Formats() {
		f, err := registry.Lookup(name)
		if err != nil {
			continue
		}
		response = append(response, api.Format{Name: f.Name, ContentType: f.ContentType, Extension: f.Extension})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode formats")
	}
}

// RenderReport renders the JSON explanation document in the request body.
func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "format")

	format, err := h.renderer.Registry().Lookup(name)
	if err != nil {
		writeError(ctx, w, http.StatusNotFound, err)
		return
	}

	insertHeaders := h.insertHeaders
	if v := r.URL.Query().Get("headers"); v != "" {
		if insertHeaders, err = strconv.ParseBool(v); err != nil {
			writeError(ctx, w, http.StatusBadRequest, errors.New("invalid 'headers' value. Expected true or false"))
			return
		}
	}

	doc, err := adapters.DecodeExplanationDoc(http.MaxBytesReader(w, r.Body, maxDocumentSize), "json")
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	req := render.Request{Doc: doc, Format: format.Name, InsertHeaders: insertHeaders}
	if err := h.renderer.Render(ctx, req, &buf); err != nil {
		writeError(ctx, w, statusOf(err), err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().
			Err(err).
			Str("format", format.Name).
			Msg("failed to write report")
	}
}

// statusOf maps rendering failures: bad explanation content is the caller's
// problem, backend and sink failures are ours.
func statusOf(err error) int {
	var explErr *domain.ExplanationError
	if !errors.As(err, &explErr) || explErr.Kind == domain.ErrRender {
		return http.StatusInternalServerError
	}
	return http.StatusUnprocessableEntity
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	logger := zerolog.Ctx(ctx)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	response := api.ErrorResponse{Error: err.Error()}
	var explErr *domain.ExplanationError
	if errors.As(err, &explErr) {
		response.Kind = explErr.Kind.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode error response")
	}
}
