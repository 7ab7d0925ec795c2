// Package socrata fetches SPD crime data from the Seattle Open Data
// Portal SODA API.
package socrata

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/reub360/seattle-crime/internal/dataset"
	"github.com/reub360/seattle-crime/internal/fetcher"
)

// DefaultBaseURL is the CSV resource endpoint for SPD Crime Data
// 2008-Present.
const DefaultBaseURL = "https://data.seattle.gov/resource/tazs-3rd5.csv"

// Client downloads crime data extracts from a Socrata CSV resource.
type Client struct {
	fetcher fetcher.Fetcher
	baseURL string
}

// NewClient creates a Client for the given resource endpoint. An empty
// baseURL selects the SPD crime data resource.
func NewClient(f fetcher.Fetcher, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{fetcher: f, baseURL: baseURL}
}

// BaseURL returns the configured resource endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// ResourceURL returns the resource URL with the row limit applied.
func (c *Client) ResourceURL(limit int) string {
	return fmt.Sprintf("%s?$limit=%d", c.baseURL, limit)
}

// FetchDataset downloads up to limit records and parses them into a
// Dataset. Date-like columns are coerced best-effort; coercion problems
// are tolerated silently on this path because the raw values survive in
// the frame either way.
func (c *Client) FetchDataset(ctx context.Context, limit int) (dataset.Dataset, error) {
	if limit <= 0 {
		return dataset.Dataset{}, eris.Errorf("socrata: limit must be positive, got %d", limit)
	}

	url := c.ResourceURL(limit)
	zap.L().Info("downloading crime data",
		zap.String("url", c.baseURL),
		zap.Int("limit", limit),
	)

	body, err := c.fetcher.Download(ctx, url)
	if err != nil {
		return dataset.Dataset{}, eris.Wrap(err, "socrata: download")
	}
	defer body.Close() //nolint:errcheck

	ds, err := dataset.Read(body, dataset.Options{})
	if err != nil {
		return dataset.Dataset{}, eris.Wrap(err, "socrata: parse response")
	}

	ds, _ = dataset.CoerceDates(ds)
	return ds, nil
}
