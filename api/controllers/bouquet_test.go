package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adjustFlower(t *testing.T, handler http.HandlerFunc, sessionID, itemID string, delta int) *httptest.ResponseRecorder {
	t.Helper()
	body := strings.NewReader(`{"item_id":"` + itemID + `","delta":` + strconv.Itoa(delta) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bouquet/flowers", body)
	req = withSessionCtx(req, sessionID)
	resp := httptest.NewRecorder()
	handler(resp, req)
	return resp
}

func TestAdjustBouquetFlowerDefaultsColors(t *testing.T) {
	store, _, logg := testDeps()
	handler := AdjustBouquetFlower(store, logg)

	resp := adjustFlower(t, handler, "s1", "flower-daisy", 3)
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Data bouquetView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var daisy *bouquetFlowerView
	for i := range envelope.Data.Flowers {
		if envelope.Data.Flowers[i].ID == "flower-daisy" {
			daisy = &envelope.Data.Flowers[i]
		}
	}
	require.NotNil(t, daisy)
	assert.Equal(t, 3, daisy.Quantity)
	// units default to the flower's first declared color
	assert.Equal(t, []string{"Pink", "Pink", "Pink"}, daisy.UnitColors)
	assert.Equal(t, 3*800, envelope.Data.Total)
	assert.True(t, envelope.Data.Committable)
}

func TestAdjustBouquetFlowerRejectsNonFlower(t *testing.T) {
	store, _, logg := testDeps()
	resp := adjustFlower(t, AdjustBouquetFlower(store, logg), "s1", "leaf-classic", 1)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCommitBouquetBelowMinimum(t *testing.T) {
	store, shipping, logg := testDeps()

	adjustFlower(t, AdjustBouquetFlower(store, logg), "s1", "flower-daisy", 2)

	req := withSessionCtx(httptest.NewRequest(http.MethodPost, "/api/bouquet/commit", nil), "s1")
	resp := httptest.NewRecorder()
	CommitBouquet(store, shipping, logg)(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCommitBouquetAddsCartLineAndResets(t *testing.T) {
	store, shipping, logg := testDeps()

	adjustFlower(t, AdjustBouquetFlower(store, logg), "s1", "flower-daisy", 3)

	req := withSessionCtx(httptest.NewRequest(http.MethodPost, "/api/bouquet/commit", nil), "s1")
	resp := httptest.NewRecorder()
	CommitBouquet(store, shipping, logg)(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Data struct {
			Cart    cartView    `json:"cart"`
			Builder bouquetView `json:"builder"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.Len(t, envelope.Data.Cart.Lines, 1)
	line := envelope.Data.Cart.Lines[0]
	assert.Equal(t, "bouquet-custom-1", line.Item.ID)
	assert.Equal(t, 2400, line.Item.Price)
	assert.Contains(t, line.Item.Description, "Daisy Crochet Flower (Pink)")

	assert.Equal(t, 0, envelope.Data.Builder.FlowerUnits)
	assert.False(t, envelope.Data.Builder.Committable)
}

func TestCommitBouquetKeysAreUniquePerSession(t *testing.T) {
	store, shipping, logg := testDeps()

	commit := CommitBouquet(store, shipping, logg)
	adjust := AdjustBouquetFlower(store, logg)

	adjustFlower(t, adjust, "s1", "flower-daisy", 3)
	first := httptest.NewRecorder()
	commit(first, withSessionCtx(httptest.NewRequest(http.MethodPost, "/api/bouquet/commit", nil), "s1"))
	require.Equal(t, http.StatusOK, first.Code)

	adjustFlower(t, adjust, "s1", "flower-daisy", 3)
	second := httptest.NewRecorder()
	commit(second, withSessionCtx(httptest.NewRequest(http.MethodPost, "/api/bouquet/commit", nil), "s1"))
	require.Equal(t, http.StatusOK, second.Code)

	var envelope struct {
		Data struct {
			Cart cartView `json:"cart"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Cart.Lines, 2)
	assert.NotEqual(t, envelope.Data.Cart.Lines[0].Item.ID, envelope.Data.Cart.Lines[1].Item.ID)
}
