package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/models"
)

type httpBackendAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpBackendAdapter) Token() string {
	return h.token
}

// CheckMobile implements [BackendAdapter]. It POSTs the phone number to
// POST /User/check-mobile and returns the registration flag from the
// response body.
func (h *httpBackendAdapter) CheckMobile(ctx context.Context, mobileNumber string) (bool, error) {
	var result models.CheckMobileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CheckMobileRequest{MobileNumber: mobileNumber}).
		SetResult(&result).
		Post("/User/check-mobile")
	if err != nil {
		return false, fmt.Errorf("check mobile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Exists, nil
}

// SendOTP implements [BackendAdapter]. It POSTs the phone number to
// POST /User/send-otp. A 2xx response whose Delivered field is false is
// returned as [ErrOTPNotDelivered]: the provider accepted the request but
// did not confirm delivery.
func (h *httpBackendAdapter) SendOTP(ctx context.Context, mobileNumber string) (models.SendOTPResponse, error) {
	var result models.SendOTPResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendOTPRequest{MobileNumber: mobileNumber}).
		SetResult(&result).
		Post("/User/send-otp")
	if err != nil {
		return models.SendOTPResponse{}, fmt.Errorf("send otp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendOTPResponse{}, err
	}

	if !result.Delivered {
		return models.SendOTPResponse{}, fmt.Errorf("%w: %s", ErrOTPNotDelivered, result.Message)
	}

	return result, nil
}

// LoginOTP implements [BackendAdapter]. It POSTs the verification payload
// to POST /User/login-otp. On success the returned access token is stored
// via SetToken and the identity payload is returned whole, so the caller
// can commit user and tokens in a single state transition.
func (h *httpBackendAdapter) LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.Identity, error) {
	var result models.LoginOTPResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/User/login-otp")
	if err != nil {
		return models.Identity{}, fmt.Errorf("login otp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	if !result.Success || result.Token == "" {
		return models.Identity{}, fmt.Errorf("%w: %s", ErrUnauthorized, result.Message)
	}

	h.SetToken(result.Token)
	return models.Identity{
		User:         result.User,
		AccessToken:  result.Token,
		RefreshToken: result.RefreshToken,
	}, nil
}

// Register implements [BackendAdapter]. It POSTs the registration payload
// to POST /User/register and returns the created user record.
func (h *httpBackendAdapter) Register(ctx context.Context, form models.RegistrationForm) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		SetResult(&created).
		Post("/User/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// UpdateProfile implements [BackendAdapter]. It PUTs the user record to
// PUT /User/update and returns the updated record. Requires a valid
// bearer token.
func (h *httpBackendAdapter) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&updated).
		Put("/User/update")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// States implements [BackendAdapter]. It GETs the state reference list
// from GET /State/list. The list is server-sourced; there is no hardcoded
// client fallback.
func (h *httpBackendAdapter) States(ctx context.Context) ([]models.State, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/State/list")
	if err != nil {
		return nil, fmt.Errorf("states request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var states []models.State
	if err = json.Unmarshal(resp.Body(), &states); err != nil {
		return nil, fmt.Errorf("decode states response: %w", err)
	}
	return states, nil
}

// Cities implements [BackendAdapter]. It GETs the city reference list from
// GET /City/list.
func (h *httpBackendAdapter) Cities(ctx context.Context) ([]models.City, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/City/list")
	if err != nil {
		return nil, fmt.Errorf("cities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cities []models.City
	if err = json.Unmarshal(resp.Body(), &cities); err != nil {
		return nil, fmt.Errorf("decode cities response: %w", err)
	}
	return cities, nil
}

func (h *httpBackendAdapter) ListLoads(ctx context.Context) ([]models.LoadPost, error) {
	resp, err := h.authedRequest(ctx).Get("/Load/list")
	if err != nil {
		return nil, fmt.Errorf("list loads request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.LoadPost
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode loads response: %w", err)
	}
	return posts, nil
}

func (h *httpBackendAdapter) CreateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error) {
	var created models.LoadPost

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&created).
		Post("/Load/create")
	if err != nil {
		return models.LoadPost{}, fmt.Errorf("create load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadPost{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) UpdateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error) {
	var updated models.LoadPost

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&updated).
		Put("/Load/update")
	if err != nil {
		return models.LoadPost{}, fmt.Errorf("update load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadPost{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) DeleteLoad(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/Load/delete/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete load request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListTrucks(ctx context.Context) ([]models.TruckPost, error) {
	resp, err := h.authedRequest(ctx).Get("/Truck/list")
	if err != nil {
		return nil, fmt.Errorf("list trucks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.TruckPost
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decode trucks response: %w", err)
	}
	return posts, nil
}

func (h *httpBackendAdapter) CreateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error) {
	var created models.TruckPost

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&created).
		Post("/Truck/create")
	if err != nil {
		return models.TruckPost{}, fmt.Errorf("create truck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TruckPost{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) UpdateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error) {
	var updated models.TruckPost

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&updated).
		Put("/Truck/update")
	if err != nil {
		return models.TruckPost{}, fmt.Errorf("update truck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TruckPost{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) DeleteTruck(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/Truck/delete/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete truck request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListTrips(ctx context.Context) ([]models.Trip, error) {
	resp, err := h.authedRequest(ctx).Get("/Trip/list")
	if err != nil {
		return nil, fmt.Errorf("list trips request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var trips []models.Trip
	if err = json.Unmarshal(resp.Body(), &trips); err != nil {
		return nil, fmt.Errorf("decode trips response: %w", err)
	}
	return trips, nil
}

func (h *httpBackendAdapter) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var created models.Trip

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(trip).
		SetResult(&created).
		Post("/Trip/create")
	if err != nil {
		return models.Trip{}, fmt.Errorf("create trip request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Trip{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).Get("/Vehicle/list")
	if err != nil {
		return nil, fmt.Errorf("list vehicles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vehicles []models.Vehicle
	if err = json.Unmarshal(resp.Body(), &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles response: %w", err)
	}
	return vehicles, nil
}

func (h *httpBackendAdapter) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	var created models.Vehicle

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(v).
		SetResult(&created).
		Post("/Vehicle/create")
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("create vehicle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vehicle{}, err
	}

	return created, nil
}

func (h *httpBackendAdapter) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	var updated models.Vehicle

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(v).
		SetResult(&updated).
		Put("/Vehicle/update")
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("update vehicle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vehicle{}, err
	}

	return updated, nil
}

func (h *httpBackendAdapter) DeleteVehicle(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/Vehicle/delete/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete vehicle request: %w", err)
	}

	return mapHTTPError(resp)
}

// Search implements [BackendAdapter]. It GETs the marketplace search
// endpoint with keyword and filterType query parameters.
func (h *httpBackendAdapter) Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error) {
	req := h.authedRequest(ctx).SetQueryParam("keyword", q.Keyword)
	if q.FilterType != "" {
		req.SetQueryParam("filterType", q.FilterType)
	}

	resp, err := req.Get("/Marketplace/search")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	var result models.SearchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}
	return result, nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
