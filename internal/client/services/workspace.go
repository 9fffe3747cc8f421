package services

import (
	"context"
	"net/url"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

type WorkspaceForm struct {
	Name        string `validate:"required"`
	Description string
	Color       string
}

type WorkspaceService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	List(ctx context.Context) ([]models.Workspace, error)
	Get(ctx context.Context, id models.ID) (models.Workspace, error)
	Create(ctx context.Context, form WorkspaceForm) (models.Workspace, error)
	Delete(ctx context.Context, id models.ID) error
}

type workspaceService struct {
	client client.Client
}

func NewWorkspaceService(c client.Client) WorkspaceService {
	return &workspaceService{client: c}
}

func (s *workspaceService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	err := s.client.Do(ctx, client.Get("/api/dashboard"), &d)
	return d, err
}

func (s *workspaceService) List(ctx context.Context) ([]models.Workspace, error) {
	var ws []models.Workspace
	if err := s.client.Do(ctx, client.Get("/api/workspaces"), &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, id models.ID) (models.Workspace, error) {
	var w models.Workspace
	if err := s.client.Do(ctx, client.Get(workspacePath(id)), &w); err != nil {
		return models.Workspace{}, err
	}
	return w, nil
}

func (s *workspaceService) Create(ctx context.Context, form WorkspaceForm) (models.Workspace, error) {
	if err := validateForm(form); err != nil {
		return models.Workspace{}, err
	}

	var w models.Workspace
	body := models.NewWorkspace{Name: form.Name, Description: form.Description, Color: form.Color}
	if err := s.client.Do(ctx, client.Post("/api/workspaces/", body), &w); err != nil {
		return models.Workspace{}, err
	}
	return w, nil
}

func (s *workspaceService) Delete(ctx context.Context, id models.ID) error {
	return s.client.Do(ctx, client.Delete(workspacePath(id)), nil)
}

func workspacePath(id models.ID) string {
	return "/api/workspaces/" + url.PathEscape(id.String())
}
