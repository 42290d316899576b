package feeds_client

// League identifies which sport's endpoint family to call
type League string

const (
	// LeagueMLB represents Major League Baseball feeds
	LeagueMLB League = "mlb"

	// LeagueNFL represents National Football League feeds
	LeagueNFL League = "nfl"

	// LeagueNBA represents National Basketball Association feeds
	LeagueNBA League = "nba"

	// LeagueNHL represents National Hockey League feeds
	LeagueNHL League = "nhl"
)

// LeagueConfig holds display metadata for a supported league
type LeagueConfig struct {
	League League `json:"league"`
	Name   string `json:"name"`
}

// PathSegment returns the URL segment for the league, e.g. "/mlb".
// The empty league maps to the empty segment.
func (l League) PathSegment() string {
	if l == "" {
		return ""
	}
	return "/" + string(l)
}

// GetSupportedLeagues returns all leagues the feed provider serves
func GetSupportedLeagues() map[League]LeagueConfig {
	return map[League]LeagueConfig{
		LeagueMLB: {
			League: LeagueMLB,
			Name:   "Major League Baseball",
		},
		LeagueNFL: {
			League: LeagueNFL,
			Name:   "National Football League",
		},
		LeagueNBA: {
			League: LeagueNBA,
			Name:   "National Basketball Association",
		},
		LeagueNHL: {
			League: LeagueNHL,
			Name:   "National Hockey League",
		},
	}
}

// ValidateLeague checks if the league is in the supported set
func ValidateLeague(league League) bool {
	leagues := GetSupportedLeagues()
	_, exists := leagues[league]
	return exists
}

// NewMLBClient returns a feeds client scoped to MLB endpoints
func NewMLBClient(apiKey, password string, opts ...Option) (*FeedsClient, error) {
	return NewFeedsClient(apiKey, password, LeagueMLB, opts...)
}

// NewNFLClient returns a feeds client scoped to NFL endpoints
func NewNFLClient(apiKey, password string, opts ...Option) (*FeedsClient, error) {
	return NewFeedsClient(apiKey, password, LeagueNFL, opts...)
}

// NewNBAClient returns a feeds client scoped to NBA endpoints
func NewNBAClient(apiKey, password string, opts ...Option) (*FeedsClient, error) {
	return NewFeedsClient(apiKey, password, LeagueNBA, opts...)
}

// NewNHLClient returns a feeds client scoped to NHL endpoints
func NewNHLClient(apiKey, password string, opts ...Option) (*FeedsClient, error) {
	return NewFeedsClient(apiKey, password, LeagueNHL, opts...)
}
