package dividend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultFeedCountries are the markets queried when the caller does not
// narrow them down.
var DefaultFeedCountries = []string{"tw", "us"}

// FeedClient fetches dividend announcements from a JSON feed. The zero Host
// is invalid; construct one with NewFeedClient.
type FeedClient struct {
	Host   string
	client *http.Client
}

// NewFeedClient returns a client for the feed at host, with responses cached
// on disk for a day.
func NewFeedClient(host string) *FeedClient {
	return &FeedClient{Host: strings.TrimSuffix(host, "/"), client: daily()}
}

// FetchYear retrieves all dividend announcements for a single year.
func (c *FeedClient) FetchYear(year int, countries ...string) ([]DividendRecord, error) {
	if len(countries) == 0 {
		countries = DefaultFeedCountries
	}
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	for _, country := range countries {
		country = strings.ToLower(strings.TrimSpace(country))
		if country != "" {
			q.Add("country", country)
		}
	}
	addr := c.Host + "/get_dividend?" + q.Encode()

	jobj, err := jget(c.client, addr)
	if err != nil {
		return nil, fmt.Errorf("error retrieving dividends for %d: %w", year, err)
	}
	records, err := decodeFeedEnvelope(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing dividend feed for %d: %w", year, err)
	}
	return records, nil
}

// Fetch retrieves announcements for the current and previous year, the
// window a year-to-date summary can depend on, merged and deduplicated.
func (c *FeedClient) Fetch(countries ...string) ([]DividendRecord, error) {
	year := Today().Year()
	var all []DividendRecord
	for _, y := range []int{year, year - 1} {
		records, err := c.FetchYear(y, countries...)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return MergeDividends(all), nil
}

// decodeFeedEnvelope extracts the record list from a feed response. The feed
// has served three shapes over time: a bare array, {"data": [...]}, and
// {"items": [...]}.
func decodeFeedEnvelope(jobj any) ([]DividendRecord, error) {
	items := jobj
	if _, ok := jobj.([]any); !ok {
		for _, path := range []string{"$.data", "$.items"} {
			jval, err := jsonpath.Get(path, jobj)
			if err != nil {
				continue
			}
			if _, ok := jval.([]any); ok {
				items = jval
				break
			}
		}
	}
	list, ok := items.([]any)
	if !ok {
		return nil, fmt.Errorf("unrecognized feed envelope %T", jobj)
	}

	// round-trip through json to map loose objects onto the record shape
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	var records []DividendRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MergeDividends deduplicates announcements by stock and dates, keeping the
// first occurrence, and sorts them by reference date then stock id.
func MergeDividends(records []DividendRecord) []DividendRecord {
	seen := make(map[string]bool, len(records))
	merged := make([]DividendRecord, 0, len(records))
	for _, rec := range records {
		key := rec.StockID + "|" + rec.DividendDate + "|" + rec.PaymentDate
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, rec)
	}
	slices.SortStableFunc(merged, func(a, b DividendRecord) int {
		if c := referenceDate(a).Compare(referenceDate(b)); c != 0 {
			return c
		}
		return strings.Compare(a.StockID, b.StockID)
	})
	return merged
}

// referenceDate is the ex-date with the payment date as fallback, zero when
// neither parses.
func referenceDate(rec DividendRecord) Date {
	if on, err := ParseDate(rec.DividendDate); err == nil {
		return on
	}
	if on, err := ParseDate(rec.PaymentDate); err == nil {
		return on
	}
	return Date{}
}
