package feeds_client

import (
	"context"
	"encoding/json"
	"fmt"
)

// PlayerGamelogs pulls per-player game logs for one game of a season.
// The game identifier is required; without it the call fails with
// ErrMissingGame and no request is issued.
func (c *FeedsClient) PlayerGamelogs(ctx context.Context, opts RequestOptions) (json.RawMessage, error) {
	if opts.Game == "" {
		return nil, ErrMissingGame
	}

	endpoint := c.pullPath(opts.season()) + PlayerGamelogsEndpoint + opts.queryWith(GameParam, opts.Game)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get player gamelogs: %w", err)
	}

	return body, nil
}
