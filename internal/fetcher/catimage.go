package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultCatImageURL = "https://api.thecatapi.com"

type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type CatImage struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewCatImage returns a client for the image search endpoint. The API key is
// optional; without one the service still answers with a single random image.
func NewCatImage(client *http.Client, baseURL, apiKey string) *CatImage {
	if baseURL == "" {
		baseURL = defaultCatImageURL
	}
	return &CatImage{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (c *CatImage) Name() string { return "Cat Image" }

func (c *CatImage) GetCatImage(ctx context.Context) ([]Image, error) {
	var header http.Header
	if c.apiKey != "" {
		header = http.Header{"X-Api-Key": []string{c.apiKey}}
	}

	resp, err := get(ctx, c.client, c.baseURL+"/v1/images/search", header)
	if err != nil {
		return nil, transportError("fetching cat image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cat image API returned status %d", resp.StatusCode)
	}

	var images []Image
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		return nil, transportError("decoding cat images", err)
	}
	return images, nil
}
