package services

import (
	"context"
	"net/url"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

const defaultDocumentType = "document"

type DocumentForm struct {
	Title   string `validate:"required"`
	Content string
	Starred bool
}

type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, form DocumentForm) (models.Document, error)
	Update(ctx context.Context, id models.ID, form DocumentForm) (models.Document, error)
	Delete(ctx context.Context, id models.ID) error
	// ToggleStar flips the star and returns the new state.
	ToggleStar(ctx context.Context, id models.ID) (bool, error)
}

type documentService struct {
	client client.Client
}

func NewDocumentService(c client.Client) DocumentService {
	return &documentService{client: c}
}

func documentPath(id models.ID) string {
	return "/api/documents/" + url.PathEscape(id.String())
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := s.client.Do(ctx, client.Get("/api/documents"), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *documentService) Create(ctx context.Context, form DocumentForm) (models.Document, error) {
	if err := validateForm(form); err != nil {
		return models.Document{}, err
	}

	var d models.Document
	body := models.DocumentBody{Name: form.Title, Content: form.Content, Type: defaultDocumentType, Starred: form.Starred}
	if err := s.client.Do(ctx, client.Post("/api/documents", body), &d); err != nil {
		return models.Document{}, err
	}
	return d, nil
}

func (s *documentService) Update(ctx context.Context, id models.ID, form DocumentForm) (models.Document, error) {
	if err := validateForm(form); err != nil {
		return models.Document{}, err
	}

	var d models.Document
	body := models.DocumentBody{Name: form.Title, Content: form.Content, Starred: form.Starred}
	if err := s.client.Do(ctx, client.Put(documentPath(id), body), &d); err != nil {
		return models.Document{}, err
	}
	return d, nil
}

func (s *documentService) Delete(ctx context.Context, id models.ID) error {
	return s.client.Do(ctx, client.Delete(documentPath(id)), nil)
}

func (s *documentService) ToggleStar(ctx context.Context, id models.ID) (bool, error) {
	var res models.StarResult
	if err := s.client.Do(ctx, client.Post(documentPath(id)+"/star", nil), &res); err != nil {
		return false, err
	}
	return res.Starred, nil
}
