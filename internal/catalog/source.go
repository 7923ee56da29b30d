package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/ecustomers/storefront/internal/domain"
)

// Source fetches the raw product list from wherever the catalog lives.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// FileSource reads the catalog from a JSON seed file on disk.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (s FileSource) Fetch(_ context.Context) ([]domain.Product, error) {
	if s.Path == "" {
		return nil, errors.New("catalog: seed file path is required")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read seed file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catalog: parse seed file: %w", err)
	}
	return products, nil
}

// HTTPSource fetches the catalog from a JSON endpoint.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	if s.URL == "" {
		return nil, errors.New("catalog: url is required")
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("catalog: decode response: %w", err)
	}
	return products, nil
}
