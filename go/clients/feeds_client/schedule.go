package feeds_client

import (
	"context"
	"encoding/json"
	"fmt"
)

// SeasonalGames pulls the full game schedule for a season. The season
// defaults to "current" when the options leave it empty. The body is
// returned unmodified; the provider owns the schema.
func (c *FeedsClient) SeasonalGames(ctx context.Context, opts RequestOptions) (json.RawMessage, error) {
	endpoint := c.pullPath(opts.season()) + SeasonalGamesEndpoint + opts.query()

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasonal games: %w", err)
	}

	return body, nil
}

// DailyGames pulls the schedule for a single date, defaulting to today in
// YYYYMMDD form.
func (c *FeedsClient) DailyGames(ctx context.Context, opts RequestOptions) (json.RawMessage, error) {
	endpoint := c.pullPath(opts.season()) + fmt.Sprintf(DailyGamesEndpoint, opts.date(c.clock)) + opts.query()

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily games: %w", err)
	}

	return body, nil
}
