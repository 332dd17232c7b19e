// Package e2e provides end-to-end tests for the inventory service.
// The actual application handler runs in an httptest.Server backed by a
// catalog file in a temp directory, so the full stack — routing,
// validation, engine, JSON persistence — is exercised the way a client
// sees it.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/retailkit/inventory/internal/app"
	"github.com/retailkit/inventory/internal/config"
)

// productURL is the base URL for the inventory API.
const productURL = "/api/v1/products"

// InventoryE2ESuite is a test suite for end-to-end tests of the inventory service.
type InventoryE2ESuite struct {
	suite.Suite
	server      *httptest.Server
	httpClient  *http.Client
	catalogPath string
}

func (s *InventoryE2ESuite) SetupTest() {
	s.catalogPath = filepath.Join(s.T().TempDir(), "catalog.json")

	cfg := &config.Config{}
	cfg.Store.Path = s.catalogPath

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	deps := app.SetupDependencies(logger)
	s.server = httptest.NewServer(app.SetupHttpHandler(deps, cfg))
	s.httpClient = &http.Client{Timeout: 10 * time.Second}
}

func (s *InventoryE2ESuite) TearDownTest() {
	s.server.Close()
}

// doJSON issues a request with an optional JSON body and decodes the
// JSON response into out when out is not nil.
func (s *InventoryE2ESuite) doJSON(method, path string, payload any, out any) *http.Response {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *InventoryE2ESuite) addProduct(payload map[string]any) map[string]any {
	var created map[string]any
	resp := s.doJSON(http.MethodPost, productURL, payload, &created)
	s.Equal(http.StatusCreated, resp.StatusCode)
	return created
}

func (s *InventoryE2ESuite) TestSellLifecycle() {
	// given: Electronics E1, price 500, quantity 5
	s.addProduct(map[string]any{
		"id": "E1", "name": "Phone", "price": 500, "quantity": 5,
		"category": "electronics", "warranty_months": 12,
	})

	var list []map[string]any
	resp := s.doJSON(http.MethodGet, productURL, nil, &list)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(list, 1)

	var value map[string]float64
	s.doJSON(http.MethodGet, "/api/v1/inventory/value", nil, &value)
	s.InDelta(2500.0, value["total_value"], 1e-9)

	// when: sell 2
	var sold map[string]any
	resp = s.doJSON(http.MethodPost, productURL+"/E1/sell", map[string]any{"amount": 2}, &sold)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.EqualValues(3, sold["quantity"])

	// then: overselling is rejected and the quantity stays at 3
	resp = s.doJSON(http.MethodPost, productURL+"/E1/sell", map[string]any{"amount": 10}, nil)
	s.Equal(http.StatusConflict, resp.StatusCode)

	var found map[string]any
	resp = s.doJSON(http.MethodGet, productURL+"/E1", nil, &found)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.EqualValues(3, found["quantity"])
}

func (s *InventoryE2ESuite) TestDuplicateID() {
	payload := map[string]any{
		"id": "E1", "name": "Phone", "price": 500, "quantity": 5, "category": "electronics",
	}
	s.addProduct(payload)

	resp := s.doJSON(http.MethodPost, productURL, payload, nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *InventoryE2ESuite) TestSweepExpired() {
	// given: one expired and one fresh grocery product
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	s.addProduct(map[string]any{
		"id": "G1", "name": "Old Milk", "price": 2.5, "quantity": 10,
		"category": "grocery", "expiry_date": yesterday,
	})
	s.addProduct(map[string]any{
		"id": "G2", "name": "Fresh Milk", "price": 2.5, "quantity": 10,
		"category": "grocery", "expiry_date": nextWeek,
	})

	// when
	var result map[string][]map[string]any
	resp := s.doJSON(http.MethodPost, "/api/v1/inventory/sweep", nil, &result)

	// then: only the expired product is removed
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(result["removed"], 1)
	s.EqualValues("G1", result["removed"][0]["id"])

	// a second sweep removes nothing
	result = nil
	s.doJSON(http.MethodPost, "/api/v1/inventory/sweep", nil, &result)
	s.Empty(result["removed"])
}

func (s *InventoryE2ESuite) TestSaveAndLoadRoundTrip() {
	// given: one product of each category
	s.addProduct(map[string]any{
		"id": "E1", "name": "Phone", "price": 499.99, "quantity": 5,
		"category": "electronics", "warranty_months": 12, "brand": "Acme",
	})
	s.addProduct(map[string]any{
		"id": "G1", "name": "Milk", "price": 2.5, "quantity": 20,
		"category": "grocery", "expiry_date": "2026-12-31",
	})
	s.addProduct(map[string]any{
		"id": "C1", "name": "Shirt", "price": 25, "quantity": 10,
		"category": "clothing", "size": "M", "material": "cotton",
	})

	var before []map[string]any
	s.doJSON(http.MethodGet, productURL, nil, &before)

	// when: save, wipe via sell-less restart (fresh server, same file), load
	resp := s.doJSON(http.MethodPost, "/api/v1/inventory/save", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.doJSON(http.MethodPost, "/api/v1/inventory/load", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	// then: the catalog is unchanged, order included
	var after []map[string]any
	s.doJSON(http.MethodGet, productURL, nil, &after)
	s.Equal(before, after)
}

func (s *InventoryE2ESuite) TestLoadMissingAndCorrupt() {
	// loading before any save: the file does not exist
	resp := s.doJSON(http.MethodPost, "/api/v1/inventory/load", nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// a corrupt file is rejected and the in-memory catalog survives
	s.addProduct(map[string]any{
		"id": "E1", "name": "Phone", "price": 500, "quantity": 5, "category": "electronics",
	})
	require.NoError(s.T(), os.WriteFile(s.catalogPath, []byte("not json"), 0o644))

	resp = s.doJSON(http.MethodPost, "/api/v1/inventory/load", nil, nil)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	var list []map[string]any
	s.doJSON(http.MethodGet, productURL, nil, &list)
	s.Len(list, 1)
}

func (s *InventoryE2ESuite) TestValidation() {
	testCases := []struct {
		name    string
		payload map[string]any
	}{
		{
			name:    "negative price",
			payload: map[string]any{"name": "Phone", "price": -1, "quantity": 5, "category": "electronics"},
		},
		{
			name:    "negative quantity",
			payload: map[string]any{"name": "Phone", "price": 1, "quantity": -5, "category": "electronics"},
		},
		{
			name:    "missing name",
			payload: map[string]any{"price": 1, "quantity": 5, "category": "electronics"},
		},
		{
			name:    "grocery with bad expiry",
			payload: map[string]any{"name": "Milk", "price": 1, "quantity": 5, "category": "grocery", "expiry_date": "whenever"},
		},
		{
			name:    "clothing without size",
			payload: map[string]any{"name": "Shirt", "price": 1, "quantity": 5, "category": "clothing", "material": "cotton"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp := s.doJSON(http.MethodPost, productURL, tc.payload, nil)
			s.Equal(http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("case %s", tc.name))
		})
	}
}

func TestInventoryE2ESuite(t *testing.T) {
	suite.Run(t, new(InventoryE2ESuite))
}
