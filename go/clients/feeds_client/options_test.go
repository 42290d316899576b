package feeds_client

import (
	"net/url"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestOptionsSeasonDefault(t *testing.T) {
	assert.Equal(t, "current", RequestOptions{}.season())
	assert.Equal(t, "2019-regular", RequestOptions{Season: "2019-regular"}.season())
}

func TestOptionsDateDefault(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2019, 9, 24, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "20190924", RequestOptions{}.date(clock))
	assert.Equal(t, "20200101", RequestOptions{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}.date(clock))
}

func TestOptionsQuery(t *testing.T) {
	assert.Equal(t, "", RequestOptions{}.query())

	opts := RequestOptions{Params: url.Values{"team": {"nyy"}, "status": {"final"}}}
	assert.Equal(t, "?status=final&team=nyy", opts.query())
}

func TestOptionsQueryWithDoesNotMutateParams(t *testing.T) {
	params := url.Values{"team": {"nyy"}}
	opts := RequestOptions{Params: params}

	got := opts.queryWith("game", "20190924-NYY-TB")
	assert.Equal(t, "?game=20190924-NYY-TB&team=nyy", got)
	assert.Empty(t, params.Get("game"))
}
