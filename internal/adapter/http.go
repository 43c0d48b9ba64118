package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/go-resty/resty/v2"
)

// Config describes where the API lives.
type Config struct {
	// BaseURL is the server address; a missing scheme defaults to http.
	BaseURL string

	// APIPrefix is the route prefix, "/api" when empty.
	APIPrefix string

	Timeout time.Duration
}

type httpAPIClient struct {
	client *utils.HTTPClient
	prefix string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs a REST implementation of [APIClient].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(cfg Config, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api"
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)

	return &httpAPIClient{client: client, prefix: prefix, logger: logger}, nil
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

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(h.path("/health"))
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpAPIClient) ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error) {
	var items []models.ScenarioListItem

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(filterQuery(filters)).
		SetResult(&items).
		Get(h.path("/scenarios"))
	if err != nil {
		return nil, fmt.Errorf("list scenarios request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpAPIClient) GetScenario(ctx context.Context, id int64) (models.ScenarioDetail, error) {
	var detail models.ScenarioDetail

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&detail).
		Get(h.path("/scenarios/{id}"))
	if err != nil {
		return models.ScenarioDetail{}, fmt.Errorf("get scenario request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScenarioDetail{}, err
	}

	return detail, nil
}

func (h *httpAPIClient) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var options models.FilterOptions

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&options).
		Get(h.path("/scenarios/filters/options"))
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("filter options request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FilterOptions{}, err
	}

	return options, nil
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post(h.path("/auth/register"))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&login).
		Post(h.path("/auth/login"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	h.logger.Debug().Int64("user_id", login.User.ID).Msg("logged in")
	return login, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.MeResponse, error) {
	if h.Token() == "" {
		return models.MeResponse{}, ErrNotLoggedIn
	}

	var me models.MeResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&me).
		Get(h.path("/auth/me"))
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return me, nil
}

func (h *httpAPIClient) path(p string) string {
	return h.prefix + p
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// filterQuery renders the present filters as query parameters.
func filterQuery(f models.ScenarioFilters) map[string]string {
	q := make(map[string]string)
	putInt := func(key string, v *int64) {
		if v != nil {
			q[key] = strconv.FormatInt(*v, 10)
		}
	}
	putInt32 := func(key string, v *int32) {
		if v != nil {
			q[key] = strconv.FormatInt(int64(*v), 10)
		}
	}

	putInt("publisher_id", f.PublisherID)
	putInt("region_id", f.RegionID)
	putInt("stakeholder_id", f.StakeholderID)
	putInt("sector_id", f.SectorID)
	if f.TypeName != nil {
		q["type_name"] = *f.TypeName
	}
	if f.TemperatureTarget != nil {
		q["temperature_target"] = *f.TemperatureTarget
	}
	putInt32("year_from", f.YearFrom)
	putInt32("year_to", f.YearTo)

	return q
}
