// internal/clients/catalog_client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"libracat/internal/catalog"
	"libracat/internal/journal"
)

// CatalogClient talks to a running catalogd over HTTP. It is the transport
// used by the libracat CLI.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// AddItem creates an item in the catalogue and returns its view.
func (c *CatalogClient) AddItem(ctx context.Context, req catalog.AddItemRequest) (*catalog.ItemView, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var view catalog.ItemView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveItem deletes an item by id. It returns false when the id was not
// present in the catalogue.
func (c *CatalogClient) RemoveItem(ctx context.Context, id int) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/items/%d", c.baseURL, id), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}
	return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}

// ListItems returns the catalogue contents, optionally filtered by type.
// An empty itemType returns everything.
func (c *CatalogClient) ListItems(ctx context.Context, itemType string) ([]catalog.ItemView, error) {
	url := c.baseURL + "/items"
	if itemType != "" {
		url += "?type=" + itemType
	}
	return c.getItems(ctx, url)
}

// FindByTitle looks up an item by exact, case-insensitive title. A nil view
// with nil error means the title is absent.
func (c *CatalogClient) FindByTitle(ctx context.Context, title string) (*catalog.ItemView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/items", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("title", title)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var views []catalog.ItemView
	if err := json.NewDecoder(resp.Body).Decode(&views); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

// Stats returns catalogue statistics.
func (c *CatalogClient) Stats(ctx context.Context) (*catalog.StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var stats catalog.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// History returns the recorded catalogue mutations.
func (c *CatalogClient) History(ctx context.Context) ([]journal.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var events []journal.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *CatalogClient) getItems(ctx context.Context, url string) ([]catalog.ItemView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var views []catalog.ItemView
	if err := json.NewDecoder(resp.Body).Decode(&views); err != nil {
		return nil, err
	}
	return views, nil
}
