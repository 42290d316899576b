package feeds_client

const (
	// Base URL
	BaseURL = "https://api.mysportsfeeds.com"

	// API version used to build the pull path
	APIVersion = "v2.1"

	// API Endpoints (relative to the season segment of the pull path)
	SeasonalGamesEndpoint  = "/games.json"
	DailyGamesEndpoint     = "/date/%s/games.json"
	PlayerGamelogsEndpoint = "/player_gamelogs.json"

	// Seasons
	SeasonCurrent = "current"

	// Dates are passed as YYYYMMDD
	DateLayout = "20060102"

	// Query parameters
	GameParam = "game"

	// Headers
	AuthorizationHeader = "Authorization"
	BasicAuthPrefix     = "Basic "
	AcceptHeader        = "Accept"
	JsonContentType     = "application/json"
)
