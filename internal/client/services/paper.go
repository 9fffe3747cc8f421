package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

// PaperFilter narrows a library listing. Zero values mean no filter.
type PaperFilter struct {
	WorkspaceID models.ID
	Limit       int
}

type PaperService interface {
	List(ctx context.Context, filter PaperFilter) ([]models.Paper, error)
	// Remove takes a paper out of a workspace.
	Remove(ctx context.Context, paper, workspace models.ID) error
}

type paperService struct {
	client client.Client
}

func NewPaperService(c client.Client) PaperService {
	return &paperService{client: c}
}

func (s *paperService) List(ctx context.Context, filter PaperFilter) ([]models.Paper, error) {
	req := client.Get("/api/papers")
	q := url.Values{}
	if filter.WorkspaceID != "" {
		q.Set("workspace_id", filter.WorkspaceID.String())
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if len(q) > 0 {
		req.Query = q
	}

	var papers []models.Paper
	if err := s.client.Do(ctx, req, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (s *paperService) Remove(ctx context.Context, paper, workspace models.ID) error {
	req := client.Delete("/api/papers/" + url.PathEscape(paper.String()))
	req.Query = url.Values{"workspace_id": {workspace.String()}}
	return s.client.Do(ctx, req, nil)
}
