package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/models"
)

type rankRequest struct {
	Persona string `json:"persona"`
	Job     string `json:"job_to_be_done"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	query := models.Query{Persona: req.Persona, Job: req.Job}
	if query.Persona == "" && query.Job == "" {
		query = models.Query{Persona: s.config.Query.Persona, Job: s.config.Query.Job}
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("rank request", zap.String("persona", query.Persona), zap.String("job", query.Job))
	result, err := s.pipeline.Run(r.Context(), query)
	if err != nil {
		s.logger.Error("pipeline run failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"input_dir":        s.config.Input.Dir,
		"semantic_enabled": s.pipeline.SemanticEnabled(),
		"config": map[string]interface{}{
			"max_sections":     s.config.Selection.MaxSections,
			"max_per_document": s.config.Selection.MaxPerDocument,
			"embedding_model":  s.config.Embedding.ModelPath,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
