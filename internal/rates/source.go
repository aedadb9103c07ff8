package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nileshk/paisa/internal/model"
)

// DefaultSourceURL is the endpoint template for the public
// exchange-rate API; the base currency code is appended to the path.
const DefaultSourceURL = "https://api.exchangerate-api.com/v4/latest"

// fetchTimeout bounds a single rate fetch. There is no retry: a
// timed-out fetch leaves the prior table in place.
const fetchTimeout = 5 * time.Second

// HTTPSource implements service.RateSource against a JSON rate API.
type HTTPSource struct {
	httpClient *http.Client
	baseURL    string
}

// ratesResponse is the provider's payload shape.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// NewHTTPSource creates a rate source for the given endpoint. An empty
// baseURL selects the default provider.
func NewHTTPSource(baseURL string) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultSourceURL
	}
	return &HTTPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// FetchRates downloads the latest table for the given base currency.
// Codes outside the supported set are dropped from the result.
func (s *HTTPSource) FetchRates(ctx context.Context, base model.Currency) (map[model.Currency]float64, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("rate source returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	rates := make(map[model.Currency]float64, len(model.Currencies()))
	for code, rate := range payload.Rates {
		cur, err := model.ParseCurrency(code)
		if err != nil {
			continue
		}
		if rate <= 0 {
			return nil, fmt.Errorf("rate source returned non-positive rate %f for %s", rate, code)
		}
		rates[cur] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("rate source returned no usable rates")
	}

	return rates, nil
}
