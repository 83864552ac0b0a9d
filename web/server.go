// ABOUTME: Web UI server with embedded templates
// ABOUTME: Provides a read-only dashboard and record lists at localhost:8080
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

//go:embed templates/*
var templatesFS embed.FS

// DefaultPort is used when Start is given port 0.
const DefaultPort = 8080

type Server struct {
	store     *settings.Store
	loader    *dashboard.Loader
	templates *template.Template
	logger    *zap.Logger
}

func NewServer(store *settings.Store, loader *dashboard.Loader, logger *zap.Logger) (*Server, error) {
	// Helper functions for templates
	funcMap := template.FuncMap{
		"percent": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v)
		},
		"barWidth": func(count, total int) int {
			if total == 0 {
				return 0
			}
			return count * 100 / total
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		store:     store,
		loader:    loader,
		templates: tmpl,
		logger:    logging.OrNop(logger).Named("web"),
	}, nil
}

// Handler returns the routes without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /contacts", s.handleContacts)
	mux.HandleFunc("GET /deals", s.handleDeals)
	mux.HandleFunc("GET /activities", s.handleActivities)
	mux.HandleFunc("GET /companies", s.handleCompanies)

	// JSON for scripts
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshotJSON)
	mux.HandleFunc("GET /api/stats", s.handleStatsJSON)
	return mux
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port int) error {
	if port == 0 {
		port = DefaultPort
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("starting web server", zap.String("addr", "http://localhost"+srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type pageData struct {
	Title    string
	Platform string
	Demo     bool
	Warnings []string
	Query    string
	Stats    dashboard.Stats
	Records  any
	Count    int
}

func (s *Server) page(title string, snap dashboard.Snapshot) pageData {
	return pageData{
		Title:    title,
		Platform: snap.Platform.DisplayName(),
		Demo:     !snap.Live(),
		Warnings: snap.Warnings(),
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.loader.Snapshot(r.Context(), s.store.Current())

	data := s.page("Dashboard", snap)
	data.Stats = dashboard.ComputeStats(snap)
	s.renderTemplate(w, "dashboard.html", data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template error", zap.String("template", name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// listPage renders one entity list with the banner for its own source.
func listPage[T any](s *Server, w http.ResponseWriter, r *http.Request, title, tmpl string, res dashboard.Result[T], fields func(T) []string) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	records := res.Records
	if query != "" {
		needle := strings.ToLower(query)
		records = nil
		for _, rec := range res.Records {
			for _, f := range fields(rec) {
				if strings.Contains(strings.ToLower(f), needle) {
					records = append(records, rec)
					break
				}
			}
		}
	}

	data := pageData{
		Title:    title,
		Platform: s.store.Current().Platform.DisplayName(),
		Demo:     res.Source == dashboard.SourceDemo,
		Query:    query,
		Records:  records,
		Count:    len(records),
	}
	if warning := res.Warning(); warning != "" {
		data.Warnings = []string{warning}
	}
	s.renderTemplate(w, tmpl, data)
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	res := s.loader.Contacts(r.Context(), s.store.Current())
	listPage(s, w, r, "Contacts", "contacts.html", res, func(c models.Contact) []string {
		return []string{c.Name, c.Email, c.Company, c.Position}
	})
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	res := s.loader.Deals(r.Context(), s.store.Current())
	listPage(s, w, r, "Deals", "deals.html", res, func(d models.Deal) []string {
		return []string{d.Title, d.Company, string(d.Stage)}
	})
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	res := s.loader.Activities(r.Context(), s.store.Current())
	listPage(s, w, r, "Activities", "activities.html", res, func(a models.Activity) []string {
		return []string{a.Title, a.Description, a.Contact, a.Company}
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	res := s.loader.Companies(r.Context(), s.store.Current())
	listPage(s, w, r, "Companies", "companies.html", res, func(c models.Company) []string {
		return []string{c.Name, c.Industry, c.Address}
	})
}

type snapshotJSON struct {
	Platform   models.Platform   `json:"platform"`
	LoadedAt   time.Time         `json:"loadedAt"`
	Warnings   []string          `json:"warnings"`
	Contacts   []models.Contact  `json:"contacts"`
	Deals      []models.Deal     `json:"deals"`
	Activities []models.Activity `json:"activities"`
	Companies  []models.Company  `json:"companies"`
}

func (s *Server) handleSnapshotJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.loader.Snapshot(r.Context(), s.store.Current())
	writeJSON(w, snapshotJSON{
		Platform:   snap.Platform,
		LoadedAt:   snap.LoadedAt,
		Warnings:   snap.Warnings(),
		Contacts:   snap.Contacts.Records,
		Deals:      snap.Deals.Records,
		Activities: snap.Activities.Records,
		Companies:  snap.Companies.Records,
	})
}

func (s *Server) handleStatsJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.loader.Snapshot(r.Context(), s.store.Current())
	writeJSON(w, dashboard.ComputeStats(snap))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
