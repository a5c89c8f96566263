package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultURL      = "https://registries.health.gov.il/api/Cosmetics/GetCosmetics"
	DefaultPageSize = 100
)

// Client fetches cosmetics registration records from the registries API.
type Client struct {
	httpClient *http.Client
	url        string
	pageSize   int
}

func NewClient(url string, pageSize int) *Client {
	if url == "" {
		url = DefaultURL
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	tr := &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{Transport: tr},
		url:        url,
		pageSize:   pageSize,
	}
}

// FetchPage retrieves a single page of records.
func (c *Client) FetchPage(ctx context.Context, q Query, pageNumber, maxResult int) (*Page, error) {
	payload := request{
		IsDescending:               false,
		MaxResult:                  maxResult,
		PageNumber:                 pageNumber,
		BusinessNotificationItemID: q.BusinessNotificationItemID,
		BusinessTypeNotificationID: q.BusinessTypeNotificationID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s (%w)", c.url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 && resp.StatusCode != 201 {
		return nil, fmt.Errorf("fetching %s (status %d)", c.url, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s (%w)", c.url, err)
	}

	var reply envelope
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decoding response from %s (%w)", c.url, err)
	}

	return &Page{
		Cosmetics:  reply.ReturnObject.CosmeticsList,
		TotalRows:  reply.ReturnObject.TotalRows,
		MaxResults: reply.ReturnObject.MaxResults,
	}, nil
}

// FetchAll walks the paginated record set and returns the complete list in
// fetch order. Any page failure aborts the fetch.
func (c *Client) FetchAll(ctx context.Context, q Query) ([]Cosmetic, error) {
	first, err := c.FetchPage(ctx, q, 1, c.pageSize)
	if err != nil {
		return nil, err
	}

	records := first.Cosmetics
	if first.TotalRows == 0 {
		log.Warnln("registry returned no records")
		return []Cosmetic{}, nil
	}

	maxResults := first.MaxResults
	if maxResults <= 0 {
		maxResults = int64(c.pageSize)
	}

	pages := int((first.TotalRows + maxResults - 1) / maxResults)

	log.WithFields(log.Fields{
		"totalRows": first.TotalRows,
		"pages":     pages,
	}).Infoln("fetching registry records")

	for page := 2; page <= pages; page++ {
		log.WithFields(log.Fields{
			"page":  page,
			"pages": pages,
		}).Debugln("fetching page")

		p, err := c.FetchPage(ctx, q, page, c.pageSize)
		if err != nil {
			return nil, err
		}

		records = append(records, p.Cosmetics...)
	}

	log.WithFields(log.Fields{
		"records": len(records),
	}).Infoln("fetched registry records")

	return records, nil
}
