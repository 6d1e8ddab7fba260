package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/speakwise/analyzer/orchestrator"
	"github.com/speakwise/analyzer/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type message struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type analyzeResponse struct {
	Message string              `json:"message"`
	Report  orchestrator.Report `json:"report"`
}

type listResponse struct {
	Reports []orchestrator.Report `json:"reports"`
}

type healthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version,omitempty"`
	Uptime    string            `json:"uptime"`
	Timestamp time.Time         `json:"timestamp"`
	Storage   string            `json:"storage"`
	Services  map[string]string `json:"services,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the SpeakWise"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:    "success",
		Message:   "Server is running",
		Version:   s.config.Version,
		Uptime:    time.Since(s.startAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
		Storage:   "disabled",
	}
	if s.reports != nil {
		resp.Storage = state(s.reports.Ping(ctx))
	}
	if s.asr != nil {
		resp.Services = map[string]string{"transcription": state(s.asr.Ping(ctx))}
	}
	writeJSON(w, http.StatusOK, resp)
}

func state(err error) string {
	if err != nil {
		return "disconnected"
	}
	return "connected"
}

// caller resolves the optional identity. Bad tokens degrade to guest.
func (s *Server) caller(r *http.Request) string {
	uid, err := s.auth.FromRequest(r)
	if err != nil {
		s.log.WithError(err).Debug("continuing as guest")
		return ""
	}
	return uid
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	file, hdr, err := r.FormFile("audio")
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, message{Message: "Audio file is too large."})
		return
	case err != nil:
		writeJSON(w, http.StatusBadRequest, message{Message: "Audio file is required."})
		return
	}
	defer file.Close()

	if hdr.Size == 0 {
		writeJSON(w, http.StatusBadRequest, message{Message: "Audio file is required."})
		return
	}

	userID := s.caller(r)
	report, err := s.analyzer.Run(r.Context(), orchestrator.Audio{Name: hdr.Filename, Data: file, Size: hdr.Size}, userID)
	switch {
	case err == nil:
	case errors.Is(err, orchestrator.ErrMissingAudio):
		writeJSON(w, http.StatusBadRequest, message{Message: "Audio file is required."})
		return
	case errors.Is(err, orchestrator.ErrUnintelligible):
		writeJSON(w, http.StatusUnprocessableEntity, message{
			Message: "Could not transcribe audio.",
			Error:   "Transcription failed",
		})
		return
	case errors.Is(err, orchestrator.ErrInsufficientContent):
		writeJSON(w, http.StatusBadRequest, message{
			Message: "Audio is too short or unclear. Please record at least 5 seconds of clear speech.",
			Error:   "Insufficient audio content",
		})
		return
	default:
		s.log.WithError(err).Error("speech analysis failed")
		writeJSON(w, http.StatusInternalServerError, message{Message: "Server error during analysis."})
		return
	}

	msg := "Analysis completed successfully"
	if userID != "" && s.reports != nil && report.ID == "" {
		msg = "Analysis completed, but the report could not be saved."
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Message: msg, Report: report})
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	if s.reports == nil {
		writeJSON(w, http.StatusServiceUnavailable, message{Message: "Report storage is not configured."})
		return "", false
	}
	uid := s.caller(r)
	if uid == "" {
		writeJSON(w, http.StatusUnauthorized, message{Message: "Sign in to view saved reports."})
		return "", false
	}
	return uid, true
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, message{Message: "limit must be a positive integer."})
			return
		}
		limit = min(n, maxListLimit)
	}

	reports, err := s.reports.ListByUser(r.Context(), uid, limit)
	if err != nil {
		s.log.WithError(err).WithField("user", uid).Error("listing reports")
		writeJSON(w, http.StatusInternalServerError, message{Message: "Server error while loading reports."})
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Reports: reports})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	report, err := s.reports.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) || (err == nil && report.UserID != uid) {
		writeJSON(w, http.StatusNotFound, message{Message: "Report not found."})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("loading report")
		writeJSON(w, http.StatusInternalServerError, message{Message: "Server error while loading reports."})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
