// Package api exposes the expense pipeline over HTTP. This is a capability
// module that can be enabled via the CLI or used programmatically; the core
// pipeline does not depend on it.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Puneet01302/my-expense-dashboard/analyzer"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/category"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/export"
	"github.com/Puneet01302/my-expense-dashboard/analyzer/tabular"
)

// Config holds the API server configuration.
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration.
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server is the HTTP front of the pipeline.
type Server struct {
	config      Config
	mux         *http.ServeMux
	categorizer *category.Categorizer
}

// New creates an API server. A nil categorizer falls back to the default
// rule table.
func New(cfg Config, categorizer *category.Categorizer) *Server {
	if categorizer == nil {
		categorizer = category.Default()
	}
	s := &Server{
		config:      cfg,
		mux:         http.NewServeMux(),
		categorizer: categorizer,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server, for use with custom
// http.Server configurations and tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart statement upload and responds with the
// categorized transactions plus aggregates as JSON, or the exported CSV when
// format=csv is requested.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("%sError reading file bytes: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := analyzer.Process(bytes.NewReader(fileBytes), handler.Filename, s.categorizer)
	if err != nil {
		log.Printf("%sError processing %s: %v", s.config.LogPrefix, handler.Filename, err)
		http.Error(w, "Could not process file: "+err.Error(), statusForProcessError(err))
		return
	}

	if wantsCSV(r) {
		csvBytes, err := export.Bytes(result.Transactions)
		if err != nil {
			http.Error(w, "Could not export CSV: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Source+"_categorized.csv"))
		w.Write(csvBytes)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// statusForProcessError maps structural input errors to 400; anything else
// counts as an unprocessable upload.
func statusForProcessError(err error) int {
	var missing tabular.MissingColumnError
	if errors.Is(err, analyzer.ErrUnsupportedFormat) || errors.As(err, &missing) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func wantsCSV(r *http.Request) bool {
	return r.FormValue("format") == "csv" || r.URL.Query().Get("format") == "csv"
}
