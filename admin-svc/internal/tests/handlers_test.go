package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "smarthotel/admin-svc/internal/api/http"
	"smarthotel/admin-svc/internal/mocks"
	"smarthotel/admin-svc/internal/service"
	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(t *testing.T) (http.Handler, *mocks.MenuGateway, *mocks.StatsGateway) {
	t.Helper()
	rdb, _ := newRedis(t)
	menu := mocks.NewMenuGateway(t)
	stats := mocks.NewStatsGateway(t)
	handler := httpapi.NewHandler(service.NewMenuService(menu), service.NewStatsService(stats, rdb, time.Hour))
	return httpapi.NewRouter(handler, nil, nil), menu, stats
}

func TestMenuHandlers(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         interface{}
		prepareMocks func(m *mocks.MenuGateway)
		wantCode     int
		wantError    string
	}{
		{
			name:   "add rejects invalid form before any request",
			method: http.MethodPost,
			path:   "/api/menu",
			body: map[string]string{
				"name": "P1zza", "description": "Cheesy and hot.", "price": "9.999",
				"category": "Fast Food", "image_url": "https://img/p.png",
			},
			wantCode:  http.StatusBadRequest,
			wantError: "Menu Name: Must contain only letters and spaces (no numbers or special characters).",
		},
		{
			name:   "add",
			method: http.MethodPost,
			path:   "/api/menu",
			body: map[string]string{
				"name": "Pizza", "description": "Cheesy and hot.", "price": "9.99",
				"category": "Fast Food", "image_url": "https://img.hotel.pk/p.png",
			},
			prepareMocks: func(m *mocks.MenuGateway) {
				m.On("AddMenuItem", mock.Anything, mock.Anything).Return("Menu item added successfully", nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:   "update uses id from path",
			method: http.MethodPut,
			path:   "/api/menu/12",
			body: map[string]string{
				"name": "Pizza", "description": "Cheesy and hot.", "price": "11",
				"category": "Fast Food", "image_url": "https://img.hotel.pk/p.png",
			},
			prepareMocks: func(m *mocks.MenuGateway) {
				m.On("UpdateMenuItem", mock.Anything, mock.MatchedBy(func(item domain.MenuItem) bool {
					return item.ID == 12 && item.Price.Equal(decimal.NewFromInt(11))
				})).Return("Menu item updated successfully", nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "delete with bad id",
			method:    http.MethodDelete,
			path:      "/api/menu/zero",
			wantCode:  http.StatusBadRequest,
			wantError: "Menu ID: Must be a valid number.",
		},
		{
			name:   "get missing item",
			method: http.MethodGet,
			path:   "/api/menu/77",
			prepareMocks: func(m *mocks.MenuGateway) {
				m.On("GetMenuItem", mock.Anything, 77).
					Return(nil, &gateway.RejectedError{Op: "get menu item", StatusCode: 404, Message: "Menu item not found"}).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: "Menu item not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, menu, _ := newAdminRouter(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(menu)
			}

			var body bytes.Buffer
			if testCase.body != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(testCase.body))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(testCase.method, testCase.path, &body))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantError != "" {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, testCase.wantError, got["error"])
			}
		})
	}
}

func TestStatsHandler_MarksStaleAnswers(t *testing.T) {
	router, _, stats := newAdminRouter(t)

	stats.On("CategoryRevenue", mock.Anything).
		Return(&domain.CategoryRevenue{Categories: []string{"Rice"}, Revenues: []decimal.Decimal{decimal.NewFromInt(300)}}, nil).Once()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(httpapi.StaleHeader))

	stats.On("CategoryRevenue", mock.Anything).
		Return(nil, &gateway.NetworkError{Op: "category revenue", Err: errors.New("down")}).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(httpapi.StaleHeader))

	stats.On("DashboardStats", mock.Anything).
		Return(nil, &gateway.NetworkError{Op: "dashboard stats", Err: errors.New("down")}).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAdminHealth(t *testing.T) {
	router, _, _ := newAdminRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"healthy","service":"admin-svc"}`, w.Body.String())
}
