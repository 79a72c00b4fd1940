package handlers

import (
	"net/http"
	"strconv"

	"loadplan-service/internal/export"
	"loadplan-service/internal/ports"
)

// ExportHandler renders a saved plan as a PDF load diagram.
type ExportHandler struct {
	Plans ports.PlanRepository
}

func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	rec, found, err := h.Plans.GetPlan(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("load plan for export failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=loadplan-"+strconv.Itoa(id)+".pdf")
	if err := export.WritePDF(w, rec.ID, rec.Plan); err != nil {
		log.Error().Err(err).Int("id", id).Msg("render plan pdf failed")
	}
}
