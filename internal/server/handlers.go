package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type recordsResponse struct {
	Records []apiRecord `json:"records"`
}

type recordResponse struct {
	Record apiRecord `json:"record"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.DB.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recordsResponse{Records: records})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows            []apiRecord `json:"rows"`
		ReplaceExisting bool        `json:"replaceExisting"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Rows) == 0 {
		http.Error(w, "import requires at least one row", http.StatusBadRequest)
		return
	}

	records, err := s.DB.ImportBatch(r.Context(), req.Rows, req.ReplaceExisting)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recordsResponse{Records: records})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Row apiRecord `json:"row"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := s.DB.Insert(r.Context(), req.Row)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recordResponse{Record: record})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	var req struct {
		Row apiRecord `json:"row"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := s.DB.Update(r.Context(), id, req.Row)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "no such record", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recordResponse{Record: record})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	err = s.DB.Delete(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "no such record", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
