package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/export"
	"github.com/yusuke/career-tracker/internal/server/middleware"
	"github.com/yusuke/career-tracker/internal/stats"
)

// Bounds the number of parallel entry queries per dashboard request.
const entryFetchConcurrency = 4

// handleDashboard aggregates the caller's full portfolio into dashboard
// statistics. Results are cached per user and invalidated on any project
// or entry write.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, ok := s.statsCache.Get(r.Context(), userID); ok {
		s.jsonResponse(w, http.StatusOK, cached)
		return
	}

	projects, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Entries are fetched per project concurrently. A failed fetch for
	// one project degrades that project's entry list to empty rather
	// than failing the whole dashboard.
	var (
		mu      sync.Mutex
		entries []db.Entry
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(entryFetchConcurrency)
	for _, p := range projects {
		projectID := p.ID
		g.Go(func() error {
			projectEntries, err := s.store.ListEntries(ctx, userID, projectID)
			if err != nil {
				log.Printf("dashboard: failed to load entries for project %s: %v", projectID, err)
				return nil
			}
			mu.Lock()
			entries = append(entries, projectEntries...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to aggregate entries: "+err.Error())
		return
	}

	result := stats.Compute(projects, entries, time.Now())
	s.statsCache.Set(r.Context(), userID, &result)
	s.jsonResponse(w, http.StatusOK, &result)
}

// handleCareerSheet streams the caller's project history as a CSV
// career sheet (経歴書), newest engagement first.
func (s *Server) handleCareerSheet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projects, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	now := time.Now()
	csv, err := export.CareerSheetCSV(projects, now)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build career sheet: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(now)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(csv)
}
