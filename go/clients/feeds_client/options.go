package feeds_client

import (
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
)

// RequestOptions carries the per-request parameters of a feed pull.
// Zero values fall back to the provider defaults: the "current" season and
// today's date. Params are serialized as-is onto the query string.
type RequestOptions struct {
	Season string
	Date   time.Time
	Game   string
	Params url.Values
}

func (o RequestOptions) season() string {
	if o.Season == "" {
		return SeasonCurrent
	}
	return o.Season
}

func (o RequestOptions) date(clock clockwork.Clock) string {
	if o.Date.IsZero() {
		return clock.Now().Format(DateLayout)
	}
	return o.Date.Format(DateLayout)
}

// query returns the encoded query string including the leading "?", or
// the empty string when there are no parameters.
func (o RequestOptions) query() string {
	if len(o.Params) == 0 {
		return ""
	}
	return "?" + o.Params.Encode()
}

// queryWith returns the query string with one parameter merged on top of
// the passthrough params. The caller's Params are not mutated.
func (o RequestOptions) queryWith(key, value string) string {
	params := url.Values{}
	for k, vs := range o.Params {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set(key, value)
	return "?" + params.Encode()
}
