// Package server is a reference implementation of the remote lead-records
// service consumed by the pipeline, backed by sqlite. It exists for local
// development and integration tests; production deployments point the
// client at the real service instead.
package server

import (
	"net/http"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/utils"
)

// apiRecord is the wire shape of a lead record served by this API. The id
// is assigned by the database and travels as a string.
type apiRecord struct {
	ID string `json:"id,omitempty"`

	Months        string `json:"Months"`
	Office        string `json:"Office"`
	RegDate       string `json:"RegDate"`
	AssDate       string `json:"AssDate"`
	LeadType      string `json:"LeadType"`
	Role          string `json:"Role"`
	ExpTrader     string `json:"ExpTrader"`
	Buyer         string `json:"Buyer"`
	Product       string `json:"Product"`
	Email         string `json:"Email"`
	Website       string `json:"Website"`
	HS            string `json:"HS"`
	HSDsc         string `json:"HSDsc"`
	CatCode       string `json:"CatCode"`
	CommercialDsc string `json:"CommercialDsc"`
	GrossWeight   string `json:"GrossWeight"`
	NetWeight     string `json:"NetWeight"`
	FobValueUSD   string `json:"FobValueUSD"`
	FobValueBirr  string `json:"FobValueBirr"`
	Qty           string `json:"Qty"`
	Unit          string `json:"Unit"`
	Destination   string `json:"Destination"`
}

type Server struct {
	DB *DB
}

func New(db *DB) *Server {
	return &Server{DB: db}
}

// Handler returns the route table, exported separately so tests can mount
// it on an httptest server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /lead-records", s.handleList)
	mux.HandleFunc("POST /lead-records/import", s.handleImport)
	mux.HandleFunc("POST /lead-records", s.handleCreate)
	mux.HandleFunc("PUT /lead-records/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /lead-records/{id}", s.handleDelete)

	return mux
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("lead-records server listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}
