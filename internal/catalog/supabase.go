package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/scholarbot/scholarbot-api/internal/model"
)

// SupabaseClient fetches the hosted scholarship table over the Supabase REST
// API. Fetch failures are returned as-is; the caller decides whether to keep
// the current snapshot. No retry here: a missed sync just means the next one
// happens later.
type SupabaseClient struct {
	url    string
	apiKey string
	client *resty.Client
}

func NewSupabaseClient(url, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		url:    url,
		apiKey: apiKey,
		client: resty.New().SetTimeout(15 * time.Second),
	}
}

// Configured reports whether the remote catalog is reachable in principle.
// Without a URL and key the service stays on the built-in table.
func (c *SupabaseClient) Configured() bool {
	return c.url != "" && c.apiKey != ""
}

// FetchScholarships reads every row of the hosted scholarships table.
// Missing optional columns default to empty strings, with "Varies" for
// deadline and amount, matching the record schema.
func (c *SupabaseClient) FetchScholarships(ctx context.Context) ([]model.Scholarship, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("supabase catalog is not configured")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("apikey", c.apiKey).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		Get(c.url + "/rest/v1/scholarships?select=*")
	if err != nil {
		return nil, fmt.Errorf("fetch scholarships: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch scholarships: unexpected status %d", resp.StatusCode())
	}

	rows := gjson.ParseBytes(resp.Body())
	if !rows.IsArray() {
		return nil, fmt.Errorf("fetch scholarships: response is not a JSON array")
	}

	var records []model.Scholarship
	rows.ForEach(func(_, row gjson.Result) bool {
		records = append(records, model.Scholarship{
			ID:        row.Get("id").String(),
			Name:      row.Get("name").String(),
			Criteria:  row.Get("criteria").String(),
			Link:      row.Get("link").String(),
			Deadline:  stringOr(row.Get("deadline"), "Varies"),
			Amount:    stringOr(row.Get("amount"), "Varies"),
			NeedBased: row.Get("need_based").String(),
		})
		return true
	})
	return records, nil
}

func stringOr(v gjson.Result, fallback string) string {
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}
