package commercetools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"cart-discount-preview/internal/infra"
	"cart-discount-preview/internal/pkg/config"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const maxErrorBody = 2048

type RequestRecorder interface {
	PlatformRequest(operation, outcome string)
}

// Client is a thin read-only commercetools HTTP API client.
type Client struct {
	http       *http.Client
	projectURL string
	locales    []string
	limit      int
	breaker    *gobreaker.CircuitBreaker[[]byte]
	recorder   RequestRecorder
	logger     *slog.Logger
}

// NewClient authenticates with the client credentials flow; tokens are
// fetched lazily and refreshed by the oauth2 transport.
func NewClient(cfg config.PlatformConfig, recorder RequestRecorder, logger *slog.Logger) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL(),
		Scopes:       cfg.EffectiveScopes(),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	base := &http.Client{Timeout: cfg.Timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := cc.Client(ctx)
	httpClient.Timeout = cfg.Timeout

	return NewClientWithHTTP(httpClient, cfg, recorder, logger)
}

func NewClientWithHTTP(httpClient *http.Client, cfg config.PlatformConfig, recorder RequestRecorder, logger *slog.Logger) *Client {
	limit := cfg.QueryLimit
	if limit <= 0 {
		limit = 500
	}
	return &Client{
		http:       httpClient,
		projectURL: cfg.ProjectURL(),
		locales:    cfg.Locales,
		limit:      limit,
		breaker:    newBreaker(cfg, logger),
		recorder:   recorder,
		logger:     logger,
	}
}

func newBreaker(cfg config.PlatformConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "commercetools",
		MaxRequests: cfg.BreakerHalfOpenReqs,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// a missing resource is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || infra.IsKind(err, infra.KindNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// get fetches path relative to the project URL and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, op, path, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.record(op, "circuit_open")
			return infra.WrapPlatformErr(c.logger, infra.KindCircuitOpen, op, "platform circuit open", err)
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.record(op, "decode_error")
		return infra.WrapPlatformErr(c.logger, infra.KindDecodeFailure, op, "unexpected response format", err)
	}
	c.record(op, "ok")
	return nil
}

func (c *Client) do(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	u := c.projectURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, infra.WrapPlatformErr(c.logger, infra.KindPlatformFailure, op, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.record(op, "transport_error")
		return nil, infra.WrapPlatformErr(c.logger, infra.KindPlatformFailure, op, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(op, "transport_error")
		return nil, infra.WrapPlatformErr(c.logger, infra.KindPlatformFailure, op, "read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.record(op, "not_found")
		return nil, infra.WrapPlatformErr(c.logger, infra.KindNotFound, op, "resource not found", nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.record(op, "http_"+fmt.Sprint(resp.StatusCode))
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, infra.WrapPlatformErr(c.logger, infra.KindPlatformFailure, op,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), errors.New(strings.TrimSpace(snippet)))
	}
	return body, nil
}

func (c *Client) record(op, outcome string) {
	if c.recorder != nil {
		c.recorder.PlatformRequest(op, outcome)
	}
}

var predicateEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// idPredicate builds `id in ("a", "b")` with backslashes and quotes escaped.
func idPredicate(ids []string) string {
	quoted := make([]string, 0, len(ids))
	for _, id := range ids {
		quoted = append(quoted, `"`+predicateEscaper.Replace(id)+`"`)
	}
	return "id in (" + strings.Join(quoted, ", ") + ")"
}
