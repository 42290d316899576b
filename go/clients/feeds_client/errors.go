package feeds_client

import "errors"

// Precondition errors, raised before any request is issued.
var (
	// ErrMissingAPIKey is returned when a client is constructed without an API key
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMissingPassword is returned when a client is constructed without a password
	ErrMissingPassword = errors.New("missing password")

	// ErrMissingGame is returned when a gamelog feed is requested without a game identifier
	ErrMissingGame = errors.New("missing game identifier")

	// ErrUnknownLeague is returned for a league outside the supported set
	ErrUnknownLeague = errors.New("unknown league")
)
