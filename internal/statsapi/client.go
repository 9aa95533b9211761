// Package statsapi is a minimal client for the stats.nba.com endpoints the
// combine pipeline reads from.
package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
)

// Endpoint names relative to the base URL.
const (
	combineEndpoint    = "draftcombinestats"
	playerInfoEndpoint = "commonplayerinfo"
	nbaLeagueID        = "00"
)

// Errors returned for responses that decode but carry no usable data.
var (
	ErrNoResultSets = errors.New("response contained no result sets")
	ErrNoRows       = errors.New("result set contained no rows")
	ErrNoColumn     = errors.New("result set is missing column")
)

// defaultHeaders mimics a browser session; stats.nba.com drops requests
// without them. Accept-Encoding is left to net/http so gzip is decoded
// transparently.
var defaultHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:72.0) Gecko/20100101 Firefox/72.0",
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.5",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
	"Connection":         "keep-alive",
	"Referer":            "https://stats.nba.com/",
	"Pragma":             "no-cache",
	"Cache-Control":      "no-cache",
}

// Client issues blocking GET requests against the stats API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ contract.StatsClient = &Client{} // Compile-time check

// NewClient creates a client for baseURL. A zero timeout keeps the
// transport default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCombine returns the combine measurements of one draft class.
func (c *Client) FetchCombine(ctx context.Context, season string) (schema.ResultSet, error) {
	params := url.Values{}
	params.Set("LeagueID", nbaLeagueID)
	params.Set("SeasonYear", season)

	rs, err := c.get(ctx, combineEndpoint, params)
	if err != nil {
		return schema.ResultSet{}, fmt.Errorf("failed to fetch combine stats for %s: %w", season, err)
	}
	return rs, nil
}

// LookupTeam returns the team abbreviation from the first row of the
// player's info result set.
func (c *Client) LookupTeam(ctx context.Context, playerID int64) (string, error) {
	params := url.Values{}
	params.Set("LeagueID", "")
	params.Set("PlayerID", strconv.FormatInt(playerID, 10))

	rs, err := c.get(ctx, playerInfoEndpoint, params)
	if err != nil {
		return "", err
	}
	if len(rs.RowSet) == 0 {
		return "", ErrNoRows
	}
	idx := rs.Index()
	if _, ok := idx[schema.ColTeamAbbreviation]; !ok {
		return "", fmt.Errorf("%w %s", ErrNoColumn, schema.ColTeamAbbreviation)
	}
	team := idx.String(rs.RowSet[0], schema.ColTeamAbbreviation)
	if !team.Valid {
		return "", fmt.Errorf("empty %s", schema.ColTeamAbbreviation)
	}
	return team.String, nil
}

// get performs the request and decodes the first result set.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (schema.ResultSet, error) {
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return schema.ResultSet{}, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.ResultSet{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the error says something useful
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return schema.ResultSet{}, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, endpoint, strings.TrimSpace(string(snippet)))
	}

	return decodeFirstResultSet(resp.Body)
}

// decodeFirstResultSet reads the stats envelope, keeping numbers as
// json.Number so identifiers survive exactly.
func decodeFirstResultSet(r io.Reader) (schema.ResultSet, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload schema.StatsResponse
	if err := dec.Decode(&payload); err != nil {
		return schema.ResultSet{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload.ResultSets) == 0 {
		return schema.ResultSet{}, ErrNoResultSets
	}
	return payload.ResultSets[0], nil
}
