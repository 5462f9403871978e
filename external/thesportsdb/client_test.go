package thesportsdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/domain/schedule"
	"github.com/riskibarqy/matchday-schedule/internal/platform/resilience"
	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

func TestClient_FetchSeasonEvents(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/secret-key/eventsseason.php" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "4328" {
			t.Errorf("unexpected league id: %s", got)
		}
		if got := r.URL.Query().Get("s"); got != "2025-2026" {
			t.Errorf("unexpected season: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[
			{"idEvent":"2001","dateEvent":"2026-03-02","strTime":"19:45:00","strHomeTeam":"Arsenal","strAwayTeam":"Chelsea"},
			{"idEvent":2002,"dateEvent":null,"dateEventLocal":"2026-03-03","strTime":"","strTimeLocal":"20:00:00+01:00","strHomeTeam":"Everton","strAwayTeam":null},
			{"idEvent":"2003","strHomeTeam":"No","strAwayTeam":"Date"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL + "/", APIKey: "secret-key", Timeout: time.Second})
	events, err := client.FetchSeasonEvents(context.Background(), "4328", "2025-2026")
	if err != nil {
		t.Fatalf("fetch season events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.ID != "2001" || first.Date != "2026-03-02" || first.Time != "19:45" || first.Home != "Arsenal" || first.Away != "Chelsea" {
		t.Fatalf("unexpected first event: %+v", first)
	}
	second := events[1]
	if second.ID != "2002" || second.Date != "2026-03-03" || second.Time != "20:00" || second.Away != "" {
		t.Fatalf("unexpected second event: %+v", second)
	}
	if events[2].Date != "" || events[2].Time != "" {
		t.Fatalf("expected missing date and time to stay empty: %+v", events[2])
	}
}

func TestClient_FetchSeasonEvents_NullEventsIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events":null}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	events, err := client.FetchSeasonEvents(context.Background(), "4347", "2026")
	if err != nil {
		t.Fatalf("fetch season events: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", events)
	}
}

func TestClient_FetchSeasonEvents_DecodeFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	if _, err := client.FetchSeasonEvents(context.Background(), "4347", "2026"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestClient_StatusErrorRedactsKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`not found`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "topsecret"})
	_, err := client.FetchSeasonEvents(context.Background(), "4347", "2026")
	if err == nil {
		t.Fatalf("expected status error")
	}
	if !strings.Contains(err.Error(), "status=404") {
		t.Fatalf("expected status in error, got %v", err)
	}
	if strings.Contains(err.Error(), "topsecret") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestClient_CircuitBreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchSeasonEvents(context.Background(), "4419", "2025-2026"); err == nil {
			t.Fatalf("expected failure on attempt %d", i)
		}
	}

	_, err := client.FetchSeasonEvents(context.Background(), "4419", "2025-2026")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected open breaker to skip the upstream call, hits=%d", got)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1},
	})
	for i := 0; i < 3; i++ {
		_, err := client.FetchSeasonEvents(context.Background(), "4419", "2025-2026")
		if errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("4xx responses must not open the breaker")
		}
	}
}

const singleEventPayload = `{"events":[{"idEvent":"1","dateEvent":"2026-03-02","strTime":"19:45:00","strHomeTeam":"Arsenal","strAwayTeam":"Chelsea"}]}`

type fetchResult struct {
	events []schedule.RawEvent
	err    error
}

func fetchAsync(ctx context.Context, client *Client, leagueID string) <-chan fetchResult {
	out := make(chan fetchResult, 1)
	go func() {
		events, err := client.FetchSeasonEvents(ctx, leagueID, "2025-2026")
		out <- fetchResult{events: events, err: err}
	}()
	return out
}

func waitArrival(t *testing.T, arrived <-chan struct{}) {
	t.Helper()
	select {
	case <-arrived:
	case <-time.After(2 * time.Second):
		t.Fatalf("upstream request never arrived")
	}
}

func TestClient_HalfOpenSharedRequestClosesBreaker(t *testing.T) {
	t.Parallel()

	var failing, gated atomic.Bool
	failing.Store(true)
	arrived := make(chan struct{}, 32)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if gated.Load() {
			arrived <- struct{}{}
			<-release
		}
		_, _ = w.Write([]byte(singleEventPayload))
	}))
	defer server.Close()
	var releaseOnce sync.Once
	releaseAll := func() { releaseOnce.Do(func() { close(release) }) }
	defer releaseAll()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      50 * time.Millisecond,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.FetchSeasonEvents(context.Background(), "4328", "2025-2026"); err == nil {
		t.Fatalf("expected transient failure to trip the breaker")
	}
	if got := client.breaker.State(); got != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", got)
	}

	failing.Store(false)
	gated.Store(true)
	time.Sleep(80 * time.Millisecond)

	// Two callers for the same league share the single half-open request.
	first := fetchAsync(context.Background(), client, "4328")
	waitArrival(t, arrived)
	second := fetchAsync(context.Background(), client, "4328")
	time.Sleep(50 * time.Millisecond)
	releaseAll()

	for i, ch := range []<-chan fetchResult{first, second} {
		res := <-ch
		if res.err != nil {
			t.Fatalf("caller %d: expected shared half-open request to succeed, got %v", i, res.err)
		}
		if len(res.events) != 1 {
			t.Fatalf("caller %d: expected 1 event, got %d", i, len(res.events))
		}
	}
	if got := client.breaker.State(); got != resilience.CircuitStateClosed {
		t.Fatalf("expected breaker to close after a successful half-open request, got %s", got)
	}

	gated.Store(false)
	results := make([]<-chan fetchResult, 0, 10)
	for i := 0; i < 10; i++ {
		results = append(results, fetchAsync(context.Background(), client, fmt.Sprintf("44%02d", i)))
	}
	for i, ch := range results {
		if res := <-ch; res.err != nil {
			t.Fatalf("league %d: expected healthy fan-out to succeed, got %v", i, res.err)
		}
	}
}

func TestClient_CallerDeadlineDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(150 * time.Millisecond):
		case <-r.Context().Done():
			return
		}
		_, _ = w.Write([]byte(singleEventPayload))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, err := client.FetchSeasonEvents(ctx, "4328", "2025-2026")
		cancel()
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("attempt %d: expected caller deadline error, got %v", i, err)
		}
		if errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: caller deadline must not open the breaker", i)
		}
	}

	events, err := client.FetchSeasonEvents(context.Background(), "4328", "2025-2026")
	if err != nil {
		t.Fatalf("expected healthy upstream to answer, got %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if got := client.breaker.State(); got != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", got)
	}
}

func TestClient_CancelledRequestIsNotCircuitFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(singleEventPayload))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.executeRequest(ctx, server.URL+"/3/eventsseason.php")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if isCircuitFailure(err) {
		t.Fatalf("cancelled request must not count as an upstream failure: %v", err)
	}
}

func TestClient_SharedRequestOutlivesFirstCallerDeadline(t *testing.T) {
	t.Parallel()

	arrived := make(chan struct{}, 4)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(singleEventPayload))
	}))
	defer server.Close()
	var releaseOnce sync.Once
	releaseAll := func() { releaseOnce.Do(func() { close(release) }) }
	defer releaseAll()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 2 * time.Second})

	shortCtx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	impatient := fetchAsync(shortCtx, client, "4328")
	waitArrival(t, arrived)
	patient := fetchAsync(context.Background(), client, "4328")

	if res := <-impatient; !errors.Is(res.err, context.DeadlineExceeded) {
		t.Fatalf("expected first caller to hit its own deadline, got %v", res.err)
	}
	releaseAll()

	res := <-patient
	if res.err != nil {
		t.Fatalf("expected second caller to receive the shared response, got %v", res.err)
	}
	if len(res.events) != 1 || res.events[0].ID != "1" {
		t.Fatalf("unexpected events: %+v", res.events)
	}
}

func TestClient_Validation(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if _, err := client.FetchSeasonEvents(context.Background(), " ", "2026"); err == nil {
		t.Fatalf("expected league id validation error")
	}
	if _, err := client.FetchSeasonEvents(context.Background(), "4347", ""); err == nil {
		t.Fatalf("expected season validation error")
	}
}

func TestFlexibleID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`{"idEvent":"123"}`: "123",
		`{"idEvent":456}`:   "456",
		`{"idEvent":null}`:  "",
		`{}`:                "",
	}
	for payload, want := range cases {
		var item eventPayload
		if err := decodeForTest(payload, &item); err != nil {
			t.Fatalf("decode %s: %v", payload, err)
		}
		if string(item.ID) != want {
			t.Fatalf("decode %s: got %q want %q", payload, item.ID, want)
		}
	}

	var item eventPayload
	if err := decodeForTest(`{"idEvent":{"nested":true}}`, &item); err == nil {
		t.Fatalf("expected object id to be rejected")
	}
}
