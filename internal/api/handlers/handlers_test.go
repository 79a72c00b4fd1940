package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadplan-service/internal/api/dto"
	"loadplan-service/internal/domain"
	"loadplan-service/internal/ports"
)

// In-memory fakes standing in for the SQLite adapters.

type fakeCargoRepo struct {
	nextID  int
	records []ports.CargoRecord
}

func (f *fakeCargoRepo) CreateItem(_ context.Context, item domain.CargoItem) (int, error) {
	f.nextID++
	f.records = append(f.records, ports.CargoRecord{ID: f.nextID, Item: item})
	return f.nextID, nil
}

func (f *fakeCargoRepo) ListItems(_ context.Context) ([]ports.CargoRecord, error) {
	return append([]ports.CargoRecord(nil), f.records...), nil
}

func (f *fakeCargoRepo) DeleteItem(_ context.Context, id int) (bool, error) {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakePlanRepo struct {
	nextID  int
	records []ports.PlanRecord
}

func (f *fakePlanRepo) CreatePlan(_ context.Context, plan domain.LoadPlan) (int, error) {
	f.nextID++
	f.records = append(f.records, ports.PlanRecord{ID: f.nextID, CreatedAt: time.Now(), Plan: plan})
	return f.nextID, nil
}

func (f *fakePlanRepo) ListPlans(_ context.Context) ([]ports.PlanRecord, error) {
	return append([]ports.PlanRecord(nil), f.records...), nil
}

func (f *fakePlanRepo) GetPlan(_ context.Context, id int) (*ports.PlanRecord, bool, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], true, nil
		}
	}
	return nil, false, nil
}

func TestItemHandlerCreateListDelete(t *testing.T) {
	repo := &fakeCargoRepo{}
	h := &ItemHandler{Repo: repo}

	body := `{"item_id":"PAL-1","type":"pallet","subtype":"europallet","quantity":3,"weight_kg":1200}`
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Stackable, "pallets never stack")

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.ListItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodDelete, "/items?id=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted dto.DeleteItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.True(t, deleted.Deleted)

	// Idempotent: a second delete succeeds with deleted=false.
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodDelete, "/items?id=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.False(t, deleted.Deleted)
}

func TestItemHandlerValidation(t *testing.T) {
	h := &ItemHandler{Repo: &fakeCargoRepo{}}

	cases := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"container","subtype":"x","quantity":1,"weight_kg":10}`},
		{"missing subtype", `{"type":"pallet","quantity":1,"weight_kg":10}`},
		{"zero quantity", `{"type":"pallet","subtype":"europallet","quantity":0,"weight_kg":10}`},
		{"negative weight", `{"type":"pallet","subtype":"europallet","quantity":1,"weight_kg":-5}`},
		{"unknown field", `{"type":"pallet","subtype":"europallet","quantity":1,"weight_kg":5,"color":"red"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestItemHandlerGeneratesItemID(t *testing.T) {
	repo := &fakeCargoRepo{}
	h := &ItemHandler{Repo: repo}

	body := `{"type":"ewc","subtype":"ewc2","quantity":2,"weight_kg":80}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ItemID)
}

func planRequestBody() string {
	return `{
		"vehicle": {
			"length_cm": 1360, "width_cm": 248, "height_cm": 270,
			"max_weight_kg": 24000, "front_axle_limit_kg": 10000, "rear_axle_limit_kg": 11500
		},
		"dunnage": {"standard": 2, "small": 2},
		"items": [
			{"item_id": "PAL-1", "type": "pallet", "subtype": "europallet", "quantity": 3, "weight_kg": 1200}
		]
	}`
}

func TestPlanHandlerCreateInlineItems(t *testing.T) {
	plans := &fakePlanRepo{}
	h := &PlanHandler{Items: &fakeCargoRepo{}, Plans: plans}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(planRequestBody())))

	require.Equal(t, http.StatusCreated, rec.Code)
	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.PlanID)
	assert.Len(t, res.Placements, 3)
	assert.Empty(t, res.RemainingItems)
	assert.InDelta(t, 1200, res.TotalWeightKg, 1e-9)
	assert.NotEmpty(t, res.Balance)
	require.Len(t, plans.records, 1, "plan persisted")
}

func TestPlanHandlerCreateFromStoredItems(t *testing.T) {
	items := &fakeCargoRepo{}
	_, err := items.CreateItem(context.Background(), domain.CargoItem{
		ItemID: "EWC-1", Type: domain.CargoTypeEWC, Subtype: "ewc2", Quantity: 4, WeightKg: 160,
	})
	require.NoError(t, err)

	h := &PlanHandler{Items: items, Plans: &fakePlanRepo{}}

	body := `{
		"vehicle": {
			"length_cm": 1360, "width_cm": 248,
			"max_weight_kg": 24000, "front_axle_limit_kg": 10000, "rear_axle_limit_kg": 11500
		},
		"dunnage": {}
	}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Placements, 4)
}

func TestPlanHandlerRejectsBadVehicle(t *testing.T) {
	h := &PlanHandler{Items: &fakeCargoRepo{}, Plans: &fakePlanRepo{}}

	body := `{"vehicle": {"length_cm": 0, "width_cm": 248, "max_weight_kg": 24000,
		"front_axle_limit_kg": 10000, "rear_axle_limit_kg": 11500}, "dunnage": {}}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanHandlerGetAndNotFound(t *testing.T) {
	plans := &fakePlanRepo{}
	h := &PlanHandler{Items: &fakeCargoRepo{}, Plans: plans}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(planRequestBody())))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/plans?id=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/plans?id=99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportHandlerRendersPDF(t *testing.T) {
	plans := &fakePlanRepo{}
	ph := &PlanHandler{Items: &fakeCargoRepo{}, Plans: plans}

	rec := httptest.NewRecorder()
	ph.Handle(rec, httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(planRequestBody())))
	require.Equal(t, http.StatusCreated, rec.Code)

	eh := &ExportHandler{Plans: plans}
	rec = httptest.NewRecorder()
	eh.Handle(rec, httptest.NewRequest(http.MethodGet, "/plans/export?id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = httptest.NewRecorder()
	eh.Handle(rec, httptest.NewRequest(http.MethodGet, "/plans/export?id=7", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
