package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/buildlocale/pkg/file"
	"github.com/dmitrymomot/buildlocale/pkg/locale"
	"github.com/dmitrymomot/buildlocale/pkg/logger"
)

// Rebuilder regenerates the bundles served by the handler.
type Rebuilder func(ctx context.Context) error

// IndexEntry describes one file in the index.
type IndexEntry struct {
	Name     string      `json:"name"`
	Locale   locale.Code `json:"locale,omitempty"`
	Language string      `json:"language,omitempty"`
	Size     int         `json:"size"`
}

type handler struct {
	store   *Store
	log     *slog.Logger
	rebuild Rebuilder
}

// NewHandler returns the preview router for store.
// The rebuild endpoint is mounted only when rebuild is not nil.
func NewHandler(store *Store, log *slog.Logger, rebuild Rebuilder) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &handler{store: store, log: log, rebuild: rebuild}

	r := chi.NewRouter()
	r.Use(RequestID, AccessLog(log))
	r.Get("/", h.index)
	r.Get("/health", h.health)
	r.Get("/*", h.file)
	if rebuild != nil {
		r.Post("/rebuild", h.rebuildBundles)
	}
	return r
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	files := h.store.Files()
	entries := make([]IndexEntry, 0, len(files))
	for _, f := range files {
		e := IndexEntry{Name: f.Name, Size: len(f.Data)}
		if code, err := locale.Detect(f.Name); err == nil {
			e.Locale = code
			e.Language = locale.DisplayName(code)
		}
		entries = append(entries, e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": entries})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ALIVE"))
}

func (h *handler) file(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	data, ok := h.store.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType(name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *handler) rebuildBundles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.rebuild(ctx); err != nil {
		h.log.ErrorContext(ctx, "rebuild failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"files": len(h.store.Files())})
}

func contentType(name string) string {
	ct := file.ContentType(name)
	if strings.HasPrefix(ct, "application/json") {
		return "application/json; charset=utf-8"
	}
	return ct
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
