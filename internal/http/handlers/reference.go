package handlers

import (
	"net/http"

	"technician-dispatch/internal/logx"
)

// ReferenceHandler serves the read-only technician and location directories.
type ReferenceHandler struct {
	technicians technicianLister
	locations   locationLister
	logger      logx.Logger
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(techs technicianLister, locs locationLister, logger logx.Logger) *ReferenceHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ReferenceHandler{technicians: techs, locations: locs, logger: logger}
}

// Technicians handles GET /technicians.
func (h *ReferenceHandler) Technicians(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, h.technicians.List())
}

// Locations handles GET /locations.
func (h *ReferenceHandler) Locations(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, h.locations.List())
}
