package zoteroweb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"zotsync/internal/domain"
)

// pageLimit is the Zotero Web API maximum page size.
const pageLimit = 100

// Client implements ports.Library against the Zotero Web API v3 for a
// user library (the account type is fixed to "user"; group libraries are
// out of scope).
type Client struct {
	baseURL   string
	libraryID string
	apiKey    string
	http      *http.Client
}

// NewClient creates a Zotero Web API client for one user library
func NewClient(baseURL, libraryID, apiKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		libraryID: libraryID,
		apiKey:    apiKey,
		http:      &http.Client{},
	}
}

func (c *Client) itemsURL(query string) string {
	u := fmt.Sprintf("%s/users/%s/items", c.baseURL, c.libraryID)
	if query != "" {
		u += "?" + query
	}
	return u
}

// do sends the request with the API auth headers and rejects any non-2xx
// response with the status and body included.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Zotero-API-Version", "3")
	req.Header.Set("Zotero-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("zotero API: %s %s: %s: %s",
			req.Method, req.URL.Path, resp.Status, bytes.TrimSpace(body))
	}
	return resp, nil
}

// KeysWithTag returns the keys of all items carrying tag, walking every
// page until the Total-Results count is exhausted.
func (c *Client) KeysWithTag(tag string) (domain.KeySet, error) {
	keys := domain.NewKeySet()
	start := 0
	for {
		query := url.Values{
			"tag":   {tag},
			"limit": {strconv.Itoa(pageLimit)},
			"start": {strconv.Itoa(start)},
		}
		req, err := http.NewRequest(http.MethodGet, c.itemsURL(query.Encode()), nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.do(req)
		if err != nil {
			return nil, err
		}

		var page []domain.Item
		decodeErr := json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("decoding item listing: %w", decodeErr)
		}

		for _, item := range page {
			keys.Add(item.Key)
		}

		total, _ := strconv.Atoi(resp.Header.Get("Total-Results"))
		start += len(page)
		if len(page) == 0 || start >= total {
			return keys, nil
		}
	}
}

// Item fetches the current record for one item key.
func (c *Client) Item(key string) (*domain.Item, error) {
	req, err := http.NewRequest(http.MethodGet, c.itemsURL("")+"/"+key, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var item domain.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decoding item %s: %w", key, err)
	}
	return &item, nil
}

// UpdateItem writes the full item record back. The fetched version is sent
// as If-Unmodified-Since-Version because the API requires it; a concurrent
// edit surfaces as this item's failure, there is no retry.
func (c *Client) UpdateItem(item *domain.Item) error {
	body, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("encoding item %s: %w", item.Key, err)
	}

	req, err := http.NewRequest(http.MethodPut, c.itemsURL("")+"/"+item.Key, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("If-Unmodified-Since-Version", strconv.Itoa(item.Version))

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
