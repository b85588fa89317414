package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/basedalex/tag-extractor/internal/db"
	"github.com/basedalex/tag-extractor/internal/session"
	"github.com/basedalex/tag-extractor/pkg/config"
	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/basedalex/tag-extractor/pkg/report"
	"github.com/basedalex/tag-extractor/pkg/source"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=router.go -destination=mocks/mock.go

const maxBodySize = 10 << 20

type HTTPResponse struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type tagsResponse struct {
	Title   string          `json:"title"`
	Report  string          `json:"report"`
	Entries frequency.Table `json:"entries"`
}

type tagService interface {
	Loaded() bool
	ProcessText(title string, lines []string)
	LoadStopWords(lines []string) int
	Title() string
	Snapshot() frequency.Table
	Render() string
	Report() (report.Report, error)
}

type reportStore interface {
	SaveReport(ctx context.Context, r report.Report) error
	GetReport(ctx context.Context, title string) (report.Report, error)
	ListTitles(ctx context.Context) ([]string, error)
}

type Handler struct {
	limiter     ratelimit.Limiter
	concurrency chan struct{}
	cfg         *config.Config

	// mu serialises access to service, which holds a single session.
	mu      sync.Mutex
	service tagService
	store   reportStore
}

// NewServer serves the tagging API until ctx is done. store may be nil, in which case
// saving and loading reports is unavailable.
func NewServer(ctx context.Context, cfg *config.Config, service tagService, store reportStore) error {
	srv := &http.Server{
		Addr:              ":" + cfg.SrvPort,
		Handler:           newRouter(cfg, service, store),
		ReadHeaderTimeout: 3 * time.Second,
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
	}()

	log.Infof("listening on :%s", cfg.SrvPort)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error with the server: %w", err)
	}

	return nil
}

func newHandler(cfg *config.Config, service tagService, store reportStore) *Handler {
	return &Handler{
		limiter:     ratelimit.New(cfg.RateLimit),
		concurrency: make(chan struct{}, cfg.ConcurrencyLimit),
		cfg:         cfg,
		service:     service,
		store:       store,
	}
}

func newRouter(cfg *config.Config, service tagService, store reportStore) *http.ServeMux {
	handler := newHandler(cfg, service, store)

	mux := http.NewServeMux()

	mux.Handle("POST /text", handler.Guard(http.HandlerFunc(handler.processText)))
	mux.Handle("POST /stopwords", handler.Guard(http.HandlerFunc(handler.loadStopWords)))
	mux.Handle("GET /tags", handler.Guard(http.HandlerFunc(handler.getTags)))
	mux.Handle("POST /save", handler.Guard(http.HandlerFunc(handler.saveTags)))
	mux.Handle("GET /reports", handler.Guard(http.HandlerFunc(handler.getReport)))

	return mux
}

// Guard applies the rate limit and the concurrency limit.
func (h *Handler) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.limiter.Take()
		h.concurrency <- struct{}{}
		defer func() {
			<-h.concurrency
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) processText(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no title given"))
		return
	}

	lines, err := readBody(w, r)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	h.service.ProcessText(title, lines)
	resp := h.tags()
	h.mu.Unlock()

	writeOkResponse(w, http.StatusOK, resp)
}

func (h *Handler) loadStopWords(w http.ResponseWriter, r *http.Request) {
	lines, err := readBody(w, r)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	count := h.service.LoadStopWords(lines)
	h.mu.Unlock()

	writeOkResponse(w, http.StatusOK, map[string]int{"count": count})
}

func (h *Handler) getTags(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	loaded := h.service.Loaded()
	resp := h.tags()
	h.mu.Unlock()

	if !loaded {
		writeErrResponse(w, http.StatusNotFound, fmt.Errorf("no text processed yet"))
		return
	}

	writeOkResponse(w, http.StatusOK, resp)
}

func (h *Handler) saveTags(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeErrResponse(w, http.StatusServiceUnavailable, fmt.Errorf("no report store configured"))
		return
	}

	h.mu.Lock()
	rep, err := h.service.Report()
	h.mu.Unlock()

	if errors.Is(err, session.ErrNoTags) {
		writeErrResponse(w, http.StatusConflict, err)
		return
	}
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	if err = h.store.SaveReport(r.Context(), rep); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusCreated, map[string]string{"id": rep.ID})
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeErrResponse(w, http.StatusServiceUnavailable, fmt.Errorf("no report store configured"))
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		titles, err := h.store.ListTitles(r.Context())
		if err != nil {
			writeErrResponse(w, http.StatusInternalServerError, err)
			return
		}
		writeOkResponse(w, http.StatusOK, map[string][]string{"titles": titles})
		return
	}

	rep, err := h.store.GetReport(r.Context(), title)
	if errors.Is(err, db.ErrNotFound) {
		writeErrResponse(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, tagsResponse{
		Title:   rep.Title,
		Report:  rep.Text(),
		Entries: rep.Entries,
	})
}

// tags must be called with h.mu held.
func (h *Handler) tags() tagsResponse {
	return tagsResponse{
		Title:   h.service.Title(),
		Report:  h.service.Render(),
		Entries: h.service.Snapshot(),
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]string, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	defer body.Close()

	lines, err := source.ReadLinesFrom(body)
	if err != nil {
		return nil, fmt.Errorf("error reading body: %w", err)
	}

	return lines, nil
}

func writeOkResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Infof("successful request with statusCode %d and data type %T", statusCode, data)
	if data != nil {
		err := json.NewEncoder(w).Encode(HTTPResponse{Data: data})
		if err != nil {
			log.Error(err)
		}
	}
}

func writeErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Error(err)

	jsonErr := json.NewEncoder(w).Encode(HTTPResponse{Error: err.Error()})
	if jsonErr != nil {
		log.Error(jsonErr)
	}
}
