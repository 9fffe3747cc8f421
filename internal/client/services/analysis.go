package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

const defaultAnalysesLimit = 10

// generateEndpoints maps an analysis kind to its generation endpoint.
var generateEndpoints = map[string]string{
	models.AnalysisSummary:          "summaries",
	models.AnalysisInsights:         "insights",
	models.AnalysisLiteratureReview: "literature-review",
}

// GenerateForm selects the papers to analyse. A literature review compares
// papers and needs at least two.
type GenerateForm struct {
	Type     string      `validate:"oneof=summary insights literature_review"`
	PaperIDs []models.ID `validate:"min=1"`
}

// AnalysisService reads, deletes and requests AI analyses. The analysis
// itself is produced by the server.
type AnalysisService interface {
	Recent(ctx context.Context, limit int) ([]models.Analysis, error)
	Get(ctx context.Context, id models.ID) (models.Analysis, error)
	Delete(ctx context.Context, id models.ID) error
	Generate(ctx context.Context, form GenerateForm) error
}

type analysisService struct {
	client client.Client
}

func NewAnalysisService(c client.Client) AnalysisService {
	return &analysisService{client: c}
}

func analysisPath(id models.ID) string {
	return "/api/ai-tools/analyses/" + url.PathEscape(id.String())
}

func (s *analysisService) Recent(ctx context.Context, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		limit = defaultAnalysesLimit
	}
	req := client.Get("/api/ai-tools/analyses")
	req.Query = url.Values{"limit": {strconv.Itoa(limit)}}

	var out []models.Analysis
	if err := s.client.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *analysisService) Get(ctx context.Context, id models.ID) (models.Analysis, error) {
	var a models.Analysis
	if err := s.client.Do(ctx, client.Get(analysisPath(id)), &a); err != nil {
		return models.Analysis{}, err
	}
	return a, nil
}

func (s *analysisService) Delete(ctx context.Context, id models.ID) error {
	return s.client.Do(ctx, client.Delete(analysisPath(id)), nil)
}

func (s *analysisService) Generate(ctx context.Context, form GenerateForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if form.Type == models.AnalysisLiteratureReview && len(form.PaperIDs) < 2 {
		return &ValidationError{Violations: []Violation{{Field: "PaperIDs", Message: msgReviewNeedsTwo}}}
	}

	body := models.GenerateRequest{
		PaperIDs: form.PaperIDs,
		Type:     form.Type,
		Title:    fmt.Sprintf("%s of %d papers", strings.ReplaceAll(form.Type, "_", " "), len(form.PaperIDs)),
		Metadata: map[string]any{},
	}
	return s.client.Do(ctx, client.Post("/api/ai-tools/"+generateEndpoints[form.Type], body), nil)
}
