package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/memory"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	decline atomic.Bool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	config := &utils.Config{
		App:       utils.AppConfig{CORSOrigins: []string{"http://localhost:5173"}},
		JWT:       utils.JWTConfig{Secret: "wire-secret", ExpiryHours: 1},
		RateLimit: utils.RateLimitConfig{Rate: "1000-M"},
		Payment:   utils.PaymentConfig{SuccessRate: 1, Currency: "INR"},
	}
	repo := memory.NewRepository()

	auth := usecase.NewAuthService(repo.User, config, zap.NewNop())
	require.NoError(t, auth.EnsureAdmin(context.Background(), "admin@hotel.local", "admin-pass"))

	ts := &testServer{t: t}
	app, err := Wiring(Dependencies{
		Repo:   repo,
		Config: config,
		Logger: zap.NewNop(),
		Oracle: usecase.SettlementFunc(func(ctx context.Context, attempt usecase.PaymentAttempt) entity.PaymentStatus {
			if ts.decline.Load() {
				return entity.PaymentStatusFailed
			}
			return entity.PaymentStatusSuccess
		}),
	})
	require.NoError(t, err)
	ts.handler = app.Router
	return ts
}

func (ts *testServer) do(method, path, token string, body any) (int, envelope) {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(ts.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func (ts *testServer) login(email, password string) string {
	code, env := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(ts.t, http.StatusOK, code)
	return decode[struct {
		Token string `json:"token"`
	}](ts.t, env).Token
}

func (ts *testServer) register(name, email string) string {
	code, env := ts.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret-pass",
	})
	require.Equal(ts.t, http.StatusCreated, code)
	return decode[struct {
		Token string `json:"token"`
	}](ts.t, env).Token
}

type idOnly struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestBookingFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login("admin@hotel.local", "admin-pass")
	guest := ts.register("Guest", "guest@example.com")
	other := ts.register("Other", "other@example.com")

	// inventory
	code, env := ts.do(http.MethodPost, "/api/hotels", admin, map[string]any{
		"name": "Sea View", "location": "Goa", "amenities": []string{"pool"},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	hotel := decode[idOnly](t, env)

	code, env = ts.do(http.MethodPost, "/api/rooms", admin, map[string]any{
		"hotelId": hotel.ID, "type": "Deluxe", "pricePerNight": 1000, "maxGuests": 2, "totalRooms": 1,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	room := decode[idOnly](t, env)

	// availability is public
	code, env = ts.do(http.MethodGet, "/api/bookings/availability/"+room.ID+"?checkIn=2030-01-10&checkOut=2030-01-12", "", nil)
	require.Equal(t, http.StatusOK, code)
	avail := decode[struct {
		AvailableRooms int  `json:"availableRooms"`
		IsAvailable    bool `json:"isAvailable"`
	}](t, env)
	assert.Equal(t, 1, avail.AvailableRooms)
	assert.True(t, avail.IsAvailable)

	// book the only unit
	stay := map[string]string{"roomId": room.ID, "checkIn": "2030-01-10", "checkOut": "2030-01-12"}
	code, env = ts.do(http.MethodPost, "/api/bookings", guest, stay)
	require.Equal(t, http.StatusCreated, code, env.Message)
	booking := decode[struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		TotalPrice int64  `json:"totalPrice"`
		Nights     int    `json:"nights"`
	}](t, env)
	assert.Equal(t, "PENDING", booking.Status)
	assert.Equal(t, int64(2000), booking.TotalPrice)
	assert.Equal(t, 2, booking.Nights)

	code, _ = ts.do(http.MethodPost, "/api/bookings", other, stay)
	assert.Equal(t, http.StatusConflict, code)

	// someone else's booking looks missing
	code, _ = ts.do(http.MethodGet, "/api/bookings/"+booking.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = ts.do(http.MethodDelete, "/api/bookings/"+booking.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// declined, then paid
	ts.decline.Store(true)
	payment := map[string]string{"bookingId": booking.ID, "method": "CARD", "cardBrand": "VISA"}
	code, env = ts.do(http.MethodPost, "/api/payments", guest, payment)
	require.Equal(t, http.StatusPaymentRequired, code)
	attempt := decode[struct {
		Payment idOnly `json:"payment"`
		Booking idOnly `json:"booking"`
	}](t, env)
	assert.Equal(t, "FAILED", attempt.Payment.Status)
	assert.Equal(t, "PENDING", attempt.Booking.Status)

	ts.decline.Store(false)
	code, env = ts.do(http.MethodPost, "/api/payments", guest, payment)
	require.Equal(t, http.StatusOK, code)
	attempt = decode[struct {
		Payment idOnly `json:"payment"`
		Booking idOnly `json:"booking"`
	}](t, env)
	assert.Equal(t, "SUCCESS", attempt.Payment.Status)
	assert.Equal(t, "CONFIRMED", attempt.Booking.Status)

	code, _ = ts.do(http.MethodPost, "/api/payments", guest, payment)
	assert.Equal(t, http.StatusConflict, code)

	code, env = ts.do(http.MethodGet, "/api/bookings/"+booking.ID, guest, nil)
	require.Equal(t, http.StatusOK, code)
	detail := decode[struct {
		Status   string   `json:"status"`
		Payments []idOnly `json:"payments"`
	}](t, env)
	assert.Equal(t, "CONFIRMED", detail.Status)
	assert.Len(t, detail.Payments, 2)

	// admin cancel frees the unit
	code, env = ts.do(http.MethodDelete, "/api/bookings/admin/cancel/"+booking.ID, admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CANCELLED", decode[idOnly](t, env).Status)

	code, _ = ts.do(http.MethodDelete, "/api/bookings/"+booking.ID, guest, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = ts.do(http.MethodPost, "/api/bookings", other, stay)
	assert.Equal(t, http.StatusCreated, code, env.Message)
}

func TestRouteGuards(t *testing.T) {
	ts := newTestServer(t)
	guest := ts.register("Guest", "guest@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"health", http.MethodGet, "/health", "", nil, http.StatusOK},
		{"hotels are public", http.MethodGet, "/api/hotels", "", nil, http.StatusOK},
		{"booking needs auth", http.MethodPost, "/api/bookings", "", map[string]string{}, http.StatusUnauthorized},
		{"payments need auth", http.MethodGet, "/api/payments/me", "", nil, http.StatusUnauthorized},
		{"admin list needs admin", http.MethodGet, "/api/bookings/admin/all", guest, nil, http.StatusForbidden},
		{"hotel create needs admin", http.MethodPost, "/api/hotels", guest, map[string]string{"name": "X"}, http.StatusForbidden},
		{"payments admin needs admin", http.MethodGet, "/api/payments/admin/all", guest, nil, http.StatusForbidden},
		{"own bookings", http.MethodGet, "/api/bookings/me", guest, nil, http.StatusOK},
		{"huge page", http.MethodGet, "/api/bookings/me?page=1000000000000000000", guest, nil, http.StatusOK},
		{"page past int", http.MethodGet, "/api/payments/me?page=99999999999999999999999", guest, nil, http.StatusOK},
		{"huge hotel page", http.MethodGet, "/api/hotels?page=1000000000000000000&per_page=100", "", nil, http.StatusOK},
		{"me", http.MethodGet, "/api/auth/me", guest, nil, http.StatusOK},
		{"invalid booking body", http.MethodPost, "/api/bookings", guest, map[string]string{"roomId": "nope"}, http.StatusBadRequest},
		{"availability without dates", http.MethodGet, "/api/bookings/availability/6f1c1d0e-4f7a-4a7e-9f3b-3b1f0e8d2a11", "", nil, http.StatusBadRequest},
		{"availability for v7 room id", http.MethodGet, "/api/bookings/availability/0190f3b2-7c1a-7d2e-8a4b-9c0d1e2f3a4b?checkIn=2030-01-10&checkOut=2030-01-12", "", nil, http.StatusNotFound},
		{"availability for unknown room", http.MethodGet, "/api/bookings/availability/6f1c1d0e-4f7a-4a7e-9f3b-3b1f0e8d2a11?checkIn=2030-01-10&checkOut=2030-01-12", "", nil, http.StatusNotFound},
		{"reversed dates", http.MethodGet, "/api/bookings/availability/6f1c1d0e-4f7a-4a7e-9f3b-3b1f0e8d2a11?checkIn=2030-01-12&checkOut=2030-01-10", "", nil, http.StatusBadRequest},
		{"wrong password", http.MethodPost, "/api/auth/login", "", map[string]string{"email": "guest@example.com", "password": "nope"}, http.StatusUnauthorized},
		{"duplicate email", http.MethodPost, "/api/auth/register", "", map[string]string{"name": "Again", "email": "guest@example.com", "password": "secret-pass"}, http.StatusConflict},
		{"unknown route", http.MethodGet, "/api/nothing", "", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := ts.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, code, env.Message)
		})
	}
}

func TestLoginSetsCookie(t *testing.T) {
	ts := newTestServer(t)

	raw, _ := json.Marshal(map[string]string{"email": "admin@hotel.local", "password": "admin-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.AccessTokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// the cookie alone authenticates
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "", cleared[0].Value)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestHugePageReturnsEmptyList(t *testing.T) {
	ts := newTestServer(t)
	guest := ts.register("Guest", "guest@example.com")

	code, env := ts.do(http.MethodGet, "/api/bookings/me?page=1000000000000000000&per_page=100", guest, nil)
	require.Equal(t, http.StatusOK, code, env.Message)

	list := decode[struct {
		Data       []idOnly `json:"data"`
		Pagination struct {
			Page    int  `json:"page"`
			HasNext bool `json:"has_next"`
		} `json:"pagination"`
	}](t, env)
	assert.NotNil(t, list.Data)
	assert.Empty(t, list.Data)
	assert.Positive(t, list.Pagination.Page)
	assert.False(t, list.Pagination.HasNext)
}
