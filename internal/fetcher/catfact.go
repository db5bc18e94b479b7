package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

const defaultCatFactURL = "https://catfact.ninja"

type Fact struct {
	Fact   string `json:"fact"`
	Length int    `json:"length"`
}

// FactResponse wraps the HTTP outcome of a fact request. A non-2xx status is
// not an error: Body is simply nil.
type FactResponse struct {
	StatusCode int
	Body       *Fact
}

func (r *FactResponse) IsSuccessful() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

type CatFact struct {
	client  *http.Client
	baseURL string
}

func NewCatFact(client *http.Client, baseURL string) *CatFact {
	if baseURL == "" {
		baseURL = defaultCatFactURL
	}
	return &CatFact{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *CatFact) Name() string { return "Cat Fact" }

func (c *CatFact) GetCatFact(ctx context.Context) (*FactResponse, error) {
	resp, err := get(ctx, c.client, c.baseURL+"/fact", nil)
	if err != nil {
		return nil, transportError("fetching cat fact", err)
	}
	defer resp.Body.Close()

	out := &FactResponse{StatusCode: resp.StatusCode}
	if !out.IsSuccessful() {
		return out, nil
	}

	var body *Fact
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		return nil, transportError("decoding cat fact", err)
	}
	out.Body = body
	return out, nil
}
