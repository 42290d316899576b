package feeds_client

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/sportsfeeds/go/clients"
)

type FeedsClient struct {
	*clients.BaseClient
	league  League
	version string
	clock   clockwork.Clock
}

// Option adjusts client construction. Used by tests and by callers that
// read overrides from config.
type Option func(*settings)

type settings struct {
	baseURL string
	version string
	timeout time.Duration
	clock   clockwork.Clock
}

// WithBaseURL points the client at a different host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithVersion selects the API version segment of the pull path.
func WithVersion(version string) Option {
	return func(s *settings) {
		s.version = version
	}
}

// WithTimeout overrides the default HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithClock injects the clock used for date defaults.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
func WithClock(clock clockwork.Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// NewFeedsClient builds a client scoped to one league. Construction fails
// before any network call if either credential is empty or the league is
// not supported.
func NewFeedsClient(apiKey, password string, league League, opts ...Option) (*FeedsClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if password == "" {
		return nil, ErrMissingPassword
	}
	if !ValidateLeague(league) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLeague, league)
	}

	s := settings{
		baseURL: BaseURL,
		version: APIVersion,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	client := &FeedsClient{
		BaseClient: clients.NewBaseClient(s.baseURL),
		league:     league,
		version:    s.version,
		clock:      s.clock,
	}

	client.SetHeader(AuthorizationHeader, BasicAuthHeader(apiKey, password))
	client.SetHeader(AcceptHeader, JsonContentType)
	if s.timeout > 0 {
		client.SetTimeout(s.timeout)
	}

	return client, nil
}

// BasicAuthHeader returns the Authorization value for the given credentials:
// "Basic " + base64(apiKey:password).
func BasicAuthHeader(apiKey, password string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(apiKey + ":" + password))
	return BasicAuthPrefix + encoded
}

// League returns the league this client is scoped to
func (c *FeedsClient) League() League {
	return c.league
}

// pullPath builds the path up to and including the season segment,
// e.g. "/v2.1/pull/mlb/current".
func (c *FeedsClient) pullPath(season string) string {
	return fmt.Sprintf("/%s/pull%s/%s", c.version, c.league.PathSegment(), season)
}
