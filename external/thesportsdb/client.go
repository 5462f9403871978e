package thesportsdb

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
	"github.com/riskibarqy/matchday-schedule/internal/platform/resilience"
	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

const (
	defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey  = "3"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20
	seasonEndpoint = "eventsseason.php"
)

var errUpstreamTransient = crerr.New("thesportsdb transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	// RatePerSecond limits outgoing requests; zero disables limiting.
	RatePerSecond  int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads season schedules from TheSportsDB v1 API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("thesportsdb")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("thesportsdb circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		logger:         logger,
		limiter:        limiter,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchSeasonEvents returns every event of one league season. A season the
// provider knows nothing about comes back as an empty slice, not an error.
func (c *Client) FetchSeasonEvents(ctx context.Context, leagueID, season string) ([]schedule.RawEvent, error) {
	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	if season == "" {
		return nil, fmt.Errorf("season is required")
	}

	query := url.Values{}
	query.Set("id", leagueID)
	query.Set("s", season)

	var envelope eventsEnvelope
	if err := c.doJSON(ctx, seasonEndpoint, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch season events league_id=%s season=%s: %w", leagueID, season, err)
	}

	out := make([]schedule.RawEvent, 0, len(envelope.Events))
	for _, item := range envelope.Events {
		out = append(out, item.toRawEvent())
	}
	return out, nil
}

// doJSON shares one upstream request between callers asking for the same
// URL. The shared request is detached from any single caller's cancellation
// and bounded by the HTTP client timeout; each caller stops waiting when its
// own context ends.
func (c *Client) doJSON(ctx context.Context, endpoint string, query url.Values, target any) error {
	fullURL := c.baseURL + "/" + url.PathEscape(c.apiKey) + "/" + endpoint
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	sharedCtx := context.WithoutCancel(ctx)
	resultCh := c.flight.DoChan(endpoint+"?"+query.Encode(), func() (any, error) {
		return c.sharedRequest(sharedCtx, fullURL)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait for provider response: %w", ctx.Err())
	case result = <-resultCh:
	}
	if result.Err != nil {
		return result.Err
	}

	raw, ok := result.Val.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", result.Val)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

// sharedRequest performs one real upstream call. The breaker sees exactly
// one Allow and one outcome per call, however many callers share it.
func (c *Client) sharedRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "thesportsdb circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: schedule provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled caller says nothing about upstream health.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("send request: %w", ctxErr)
		}
		reqErr := crerr.Wrapf(errUpstreamTransient, "send request: %s", c.sanitize(err.Error()))
		c.logger.WarnContext(ctx, "thesportsdb request failed", "url", c.sanitize(fullURL), "error", reqErr)
		return nil, reqErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("read response body: %w", ctxErr)
		}
		return nil, crerr.Wrapf(errUpstreamTransient, "read response body: %v", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	var statusErr error
	if isTransientStatus(resp.StatusCode) {
		statusErr = crerr.Wrapf(errUpstreamTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	} else {
		statusErr = crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
	c.logger.WarnContext(ctx, "thesportsdb request failed", "url", c.sanitize(fullURL), "status", resp.StatusCode)
	return nil, statusErr
}

// sanitize hides the API key path segment in URLs and error text.
func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, "/"+url.PathEscape(c.apiKey)+"/", "/REDACTED/")
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return stderrors.Is(err, errUpstreamTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
