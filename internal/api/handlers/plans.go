package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"loadplan-service/internal/api/dto"
	"loadplan-service/internal/domain"
	"loadplan-service/internal/platform/obs"
	"loadplan-service/internal/ports"
	"loadplan-service/internal/services"
)

// PlanHandler runs the packing engine and exposes saved plans.
type PlanHandler struct {
	Items   ports.CargoRepository
	Plans   ports.PlanRepository
	Metrics *obs.Metrics
}

func (h *PlanHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		if r.URL.Query().Get("id") != "" {
			h.get(w, r)
			return
		}
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create validates the payload, forwards it verbatim to the engine, and
// persists the returned plan.
func (h *PlanHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	vehicle, msg := vehicleFromPayload(req.Vehicle)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	var items []domain.CargoItem
	if len(req.Items) > 0 {
		for _, payload := range req.Items {
			item, msg := itemFromRequest(payload)
			if msg != "" {
				writeError(w, r, http.StatusBadRequest, msg)
				return
			}
			items = append(items, item)
		}
	} else {
		records, err := h.Items.ListItems(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("load stored items failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		for _, rec := range records {
			items = append(items, rec.Item)
		}
	}

	inventory := domain.DunnageInventory{
		Standard:         req.Dunnage.Standard,
		Small:            req.Dunnage.Small,
		ThreeD:           req.Dunnage.ThreeD,
		PalletStabilizer: req.Dunnage.PalletStabilizer,
	}

	plan := services.Optimize(items, vehicle, inventory)

	id, err := h.Plans.CreatePlan(r.Context(), plan)
	if err != nil {
		log.Error().Err(err).Msg("persist plan failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if h.Metrics != nil {
		h.Metrics.PlansCreated.Inc()
	}

	writeJSON(w, r, http.StatusCreated, planResponse(id, nil, plan))
}

func (h *PlanHandler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.Plans.ListPlans(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list plans failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlansResponse{Plans: make([]dto.PlanResponse, 0, len(records))}
	for _, rec := range records {
		created := rec.CreatedAt
		res.Plans = append(res.Plans, planResponse(rec.ID, &created, rec.Plan))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	rec, found, err := h.Plans.GetPlan(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("get plan failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}

	created := rec.CreatedAt
	writeJSON(w, r, http.StatusOK, planResponse(rec.ID, &created, rec.Plan))
}

func vehicleFromPayload(p dto.VehiclePayload) (domain.VehicleEnvelope, string) {
	if p.LengthCm <= 0 || p.WidthCm <= 0 {
		return domain.VehicleEnvelope{}, "vehicle length_cm and width_cm must be positive"
	}
	if p.MaxWeightKg <= 0 {
		return domain.VehicleEnvelope{}, "vehicle max_weight_kg must be positive"
	}
	if p.FrontAxleLimitKg <= 0 || p.RearAxleLimitKg <= 0 {
		return domain.VehicleEnvelope{}, "vehicle axle limits must be positive"
	}

	v := domain.VehicleEnvelope{
		LengthCm:         p.LengthCm,
		WidthCm:          p.WidthCm,
		HeightCm:         p.HeightCm,
		MaxWeightKg:      p.MaxWeightKg,
		FrontAxleLimitKg: p.FrontAxleLimitKg,
		RearAxleLimitKg:  p.RearAxleLimitKg,
	}
	for _, z := range p.Zones {
		v.Zones = append(v.Zones, domain.Zone{Label: z.Label, FromCm: z.FromCm, ToCm: z.ToCm})
	}
	if len(v.Zones) == 0 {
		v.Zones = domain.DefaultZones(v.LengthCm)
	}
	return v, ""
}

func planResponse(id int, createdAt *time.Time, plan domain.LoadPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		PlanID:         id,
		CreatedAt:      createdAt,
		Placements:     make([]dto.PlacementResponse, 0, len(plan.Placements)),
		RemainingItems: make([]dto.RemainingItemResponse, 0, len(plan.RemainingItems)),
		Dunnage: dto.DunnagePayload{
			Standard:         plan.Dunnage.Standard,
			Small:            plan.Dunnage.Small,
			ThreeD:           plan.Dunnage.ThreeD,
			PalletStabilizer: plan.Dunnage.PalletStabilizer,
		},
		TotalWeightKg:        plan.TotalWeightKg,
		FrontAxleLoadKg:      plan.FrontAxleLoadKg,
		RearAxleLoadKg:       plan.RearAxleLoadKg,
		SpaceUtilizationPct:  plan.SpaceUtilizationPct,
		WeightUtilizationPct: plan.WeightUtilizationPct,
		Balance:              string(plan.Balance),
		Gaps:                 make([]dto.GapResponse, 0, len(plan.Gaps)),
	}

	for _, p := range plan.Placements {
		res.Placements = append(res.Placements, dto.PlacementResponse{
			ItemID:   p.ItemID,
			Type:     string(p.Type),
			Subtype:  p.Subtype,
			X:        p.X,
			Y:        p.Y,
			WidthCm:  p.WidthCm,
			HeightCm: p.HeightCm,
			WeightKg: p.WeightKg,
			Zone:     p.ZoneLabel,
		})
	}
	for _, item := range plan.RemainingItems {
		res.RemainingItems = append(res.RemainingItems, dto.RemainingItemResponse{
			ItemID:   item.ItemID,
			Type:     string(item.Type),
			Subtype:  item.Subtype,
			Quantity: item.Quantity,
			WeightKg: item.WeightKg,
		})
	}
	for _, g := range plan.Gaps {
		res.Gaps = append(res.Gaps, dto.GapResponse{X: g.X, Y: g.Y, WidthCm: g.WidthCm, HeightCm: g.HeightCm})
	}
	return res
}
