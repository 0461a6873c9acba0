package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPBackendAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// ── NewHTTPBackendAdapter ───────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPBackendAdapter_SchemeAdded(t *testing.T) {
	a, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpBackendAdapter).client.BaseURL)
}

// ── CheckMobile ─────────────────────────────────────────────────────────────

func TestCheckMobile_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/User/check-mobile", r.URL.Path)

		var req models.CheckMobileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9999999999", req.MobileNumber)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CheckMobileResponse{Exists: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	exists, err := a.CheckMobile(context.Background(), "9999999999")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCheckMobile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckMobile(context.Background(), "9999999999")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── SendOTP ─────────────────────────────────────────────────────────────────

func TestSendOTP_Delivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/User/send-otp", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SendOTPResponse{Delivered: true, Code: "1234"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.SendOTP(context.Background(), "9999999999")

	require.NoError(t, err)
	assert.True(t, resp.Delivered)
	assert.Equal(t, "1234", resp.Code)
}

// A 2xx body whose confirmation flag is false is still a failed send.
func TestSendOTP_NotDelivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SendOTPResponse{Delivered: false, Message: "provider rejected"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendOTP(context.Background(), "9999999999")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOTPNotDelivered)
}

// ── LoginOTP ────────────────────────────────────────────────────────────────

func TestLoginOTP_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/User/login-otp", r.URL.Path)

		var req models.LoginOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9999999999", req.MobileNumber)
		assert.Equal(t, "1234", req.OTP)
		assert.NotEmpty(t, req.DeviceToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginOTPResponse{
			Success:      true,
			User:         models.User{UserID: 7, FirstName: "Asha", MobileNumber: "9999999999"},
			Token:        "access-token",
			RefreshToken: "refresh-token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	identity, err := a.LoginOTP(context.Background(), models.LoginOTPRequest{
		MobileNumber: "9999999999",
		OTP:          "1234",
		DeviceType:   "terminal",
		DeviceToken:  "device-uuid",
		LoginType:    "otp",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.User.UserID)
	assert.Equal(t, "access-token", identity.AccessToken)
	assert.Equal(t, "refresh-token", identity.RefreshToken)
	assert.Equal(t, "access-token", a.Token())
}

func TestLoginOTP_WrongCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid otp"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginOTP(context.Background(), models.LoginOTPRequest{MobileNumber: "9999999999", OTP: "0000"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// A success envelope without a token must not half-populate the identity.
func TestLoginOTP_SuccessFlagWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginOTPResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LoginOTP(context.Background(), models.LoginOTPRequest{MobileNumber: "9999999999", OTP: "1234"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/User/register", r.URL.Path)

		var form models.RegistrationForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{
			UserID:       42,
			FirstName:    form.FirstName,
			MobileNumber: form.MobileNumber,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.Register(context.Background(), models.RegistrationForm{
		FirstName:    "Asha",
		MobileNumber: "9999999999",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, "Asha", created.FirstName)
}

// ── reference lists ─────────────────────────────────────────────────────────

func TestStates_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/State/list", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.State{{ID: 1, Name: "Maharashtra", Code: "MH"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	states, err := a.States(context.Background())

	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "MH", states[0].Code)
}

func TestStates_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.States(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode states response")
}

// ── listings ────────────────────────────────────────────────────────────────

func TestListLoads_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.LoadPost{{ID: 1, Origin: "Pune", Destination: "Nagpur"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-123")

	posts, err := a.ListLoads(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Pune", posts[0].Origin)
}

func TestCreateTruck_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Truck/create", r.URL.Path)

		var post models.TruckPost
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		post.ID = 9

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(post)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	created, err := a.CreateTruck(context.Background(), models.TruckPost{CurrentCity: "Indore"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "Indore", created.CurrentCity)
}

func TestDeleteLoad_PathAndError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Load/delete/15", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.DeleteLoad(context.Background(), 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestSearch_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Marketplace/search", r.URL.Path)
		assert.Equal(t, "pune", r.URL.Query().Get("keyword"))
		assert.Equal(t, "load", r.URL.Query().Get("filterType"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SearchResult{
			Loads: []models.LoadPost{{ID: 3, Origin: "Pune"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	result, err := a.Search(context.Background(), models.SearchQuery{Keyword: "pune", FilterType: "load"})
	require.NoError(t, err)
	require.Len(t, result.Loads, 1)
	assert.Empty(t, result.Trucks)
}
