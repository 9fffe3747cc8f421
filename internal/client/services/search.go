package services

import (
	"context"
	"strings"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

const defaultMaxResults = 20

type SearchForm struct {
	Query string `validate:"required"`
	// Source restricts the search to one index; empty means all.
	Source     string
	MaxResults int
}

type SearchService interface {
	Search(ctx context.Context, form SearchForm) ([]models.SearchResult, error)
	Import(ctx context.Context, paper models.SearchResult, workspace models.ID) error
}

type searchService struct {
	client client.Client
}

func NewSearchService(c client.Client) SearchService {
	return &searchService{client: c}
}

func (s *searchService) Search(ctx context.Context, form SearchForm) ([]models.SearchResult, error) {
	form.Query = strings.TrimSpace(form.Query)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	req := models.SearchRequest{Query: form.Query, MaxResults: form.MaxResults}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultMaxResults
	}
	if form.Source != "" && form.Source != "all" {
		req.Source = &form.Source
	}

	var resp models.SearchResponse
	if err := s.client.Do(ctx, client.Post("/api/search/papers", req), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (s *searchService) Import(ctx context.Context, paper models.SearchResult, workspace models.ID) error {
	body := models.ImportRequest{SearchResult: paper, WorkspaceID: workspace}
	return s.client.Do(ctx, client.Post("/api/search/import", body), nil)
}
