// Package web serves a localhost-only read-only view of the archive: the
// dashboard page itself plus JSON endpoints over the stored report runs.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wasdex/storage"
)

type Server struct {
	store        *storage.SQLiteStore
	templatePath string
	mux          *http.ServeMux
}

type reportSummary struct {
	ReportID   string `json:"reportId"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	ReportDate string `json:"reportDate"`
	UpdatedAt  string `json:"updatedAt"`
}

func NewServer(store *storage.SQLiteStore, templatePath string) *Server {
	s := &Server{store: store, templatePath: templatePath, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleDashboard)
	s.mux.HandleFunc("GET /api/reports", s.handleListReports)
	s.mux.HandleFunc("GET /api/reports/{year}/{month}", s.handleGetReport)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.templatePath)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListReports()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]reportSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, reportSummary{
			ReportID:   row.ReportID,
			Year:       row.Year,
			Month:      row.Month,
			ReportDate: row.ReportDate,
			UpdatedAt:  row.CreatedAt,
		})
	}
	writeJSON(w, summaries)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	row, err := s.store.GetReport(year, month)
	if errors.Is(err, storage.ErrReportNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The payload is the archived record's JSON, written through verbatim.
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(row.Payload)
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
