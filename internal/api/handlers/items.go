package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"loadplan-service/internal/api/dto"
	"loadplan-service/internal/domain"
	"loadplan-service/internal/ports"
)

// ItemHandler exposes CRUD endpoints for stored cargo items.
type ItemHandler struct {
	Repo ports.CargoRepository
}

func (h *ItemHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ItemHandler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.ListItems(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list items failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListItemsResponse{Items: make([]dto.ItemResponse, 0, len(records))}
	for _, rec := range records {
		res.Items = append(res.Items, itemResponse(rec))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ItemHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.ItemRequest

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

	item, msg := itemFromRequest(req)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	id, err := h.Repo.CreateItem(r.Context(), item)
	if err != nil {
		log.Error().Err(err).Str("item_id", item.ItemID).Msg("create item failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, itemResponse(ports.CargoRecord{ID: id, Item: item}))
}

func (h *ItemHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	found, err := h.Repo.DeleteItem(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("delete item failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteItemResponse{ID: id, Deleted: found})
}

// itemFromRequest validates an incoming payload and converts it to the
// domain type, generating an identifier when the client omits one.
func itemFromRequest(req dto.ItemRequest) (domain.CargoItem, string) {
	cargoType := domain.CargoType(strings.TrimSpace(req.Type))
	if !cargoType.Valid() {
		return domain.CargoItem{}, "type must be one of pallet, tank, ewc"
	}

	subtype := strings.TrimSpace(req.Subtype)
	if subtype == "" {
		return domain.CargoItem{}, "subtype is required"
	}
	if req.Quantity < 1 {
		return domain.CargoItem{}, "quantity must be at least 1"
	}
	if req.WeightKg < 0 {
		return domain.CargoItem{}, "weight_kg must not be negative"
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		itemID = uuid.NewString()
	}

	return domain.CargoItem{
		ItemID:   itemID,
		Type:     cargoType,
		Subtype:  subtype,
		Quantity: req.Quantity,
		WeightKg: req.WeightKg,
	}, ""
}

func itemResponse(rec ports.CargoRecord) dto.ItemResponse {
	return dto.ItemResponse{
		ID:        rec.ID,
		ItemID:    rec.Item.ItemID,
		Type:      string(rec.Item.Type),
		Subtype:   rec.Item.Subtype,
		Quantity:  rec.Item.Quantity,
		WeightKg:  rec.Item.WeightKg,
		Stackable: rec.Item.Stackable(),
	}
}
