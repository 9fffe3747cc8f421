package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().
		on("GET", "/api/workspaces", []map[string]any{{"id": 1, "name": "ML"}, {"id": "b2", "name": "Bio"}}, nil).
		on("POST", "/api/workspaces/", map[string]any{"id": 3, "name": "New"}, nil)
	svc := NewWorkspaceService(fc)

	ws, err := svc.List(ctx)
	require.NoError(t, err)
	want := []models.Workspace{{ID: "1", Name: "ML"}, {ID: "b2", Name: "Bio"}}
	if diff := cmp.Diff(want, ws); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	w, err := svc.Create(ctx, WorkspaceForm{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), w.ID)

	require.NoError(t, svc.Delete(ctx, "3"))
	last := fc.requests[len(fc.requests)-1]
	assert.Equal(t, "DELETE", last.Method)
	assert.Equal(t, "/api/workspaces/3", last.Path)

	_, err = svc.Create(ctx, WorkspaceForm{})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Workspace name is required", ve.Error())
}

func TestWorkspaceService_ErrorsPassThrough(t *testing.T) {
	fc := newFakeClient().on("GET", "/api/dashboard", nil, client.ErrUnauthorized)
	_, err := NewWorkspaceService(fc).Dashboard(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().on("POST", "/api/search/papers", map[string]any{
		"results": []map[string]any{
			{"title": "P1", "authors": "Ada, Bob ,", "tags": []string{"ml", " nlp "}},
		},
	}, nil)
	svc := NewSearchService(fc)

	res, err := svc.Search(ctx, SearchForm{Query: "  transformers ", Source: "all"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, models.StringList{"Ada", "Bob"}, res[0].Authors)
	assert.Equal(t, models.StringList{"ml", "nlp"}, res[0].Tags)

	body, ok := fc.requests[0].Body.(models.SearchRequest)
	require.True(t, ok)
	assert.Equal(t, "transformers", body.Query)
	assert.Nil(t, body.Source)
	assert.Equal(t, defaultMaxResults, body.MaxResults)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	fc := newFakeClient()
	_, err := NewSearchService(fc).Search(context.Background(), SearchForm{Query: "   "})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Please enter a search query", ve.Error())
	assert.Zero(t, fc.calls())
}

func TestSearchService_Import(t *testing.T) {
	fc := newFakeClient()
	paper := models.SearchResult{Title: "P1", Source: "arxiv"}

	require.NoError(t, NewSearchService(fc).Import(context.Background(), paper, "7"))
	body, ok := fc.requests[0].Body.(models.ImportRequest)
	require.True(t, ok)
	assert.Equal(t, models.ID("7"), body.WorkspaceID)
	assert.Equal(t, "P1", body.Title)
}

func TestDocumentService(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().
		on("GET", "/api/documents", []map[string]any{{"id": 1, "name": "Notes", "is_starred": true}}, nil).
		on("POST", "/api/documents", map[string]any{"id": 2, "name": "Draft"}, nil)
	svc := NewDocumentService(fc)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Document{{ID: "1", Name: "Notes", Starred: true}}, docs)

	d, err := svc.Create(ctx, DocumentForm{Title: "Draft", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Draft", d.Name)
	body, ok := fc.requests[1].Body.(models.DocumentBody)
	require.True(t, ok)
	assert.Equal(t, models.DocumentBody{Name: "Draft", Content: "x", Type: "document"}, body)

	_, err = svc.Create(ctx, DocumentForm{})
	assert.EqualError(t, err, "Document title is required")
	assert.Equal(t, 2, fc.calls())
}

func TestDocumentService_UpdateDeleteStar(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().
		on("PUT", "/api/documents/4", map[string]any{"id": 4, "name": "Renamed", "content": "body"}, nil).
		on("POST", "/api/documents/4/star", map[string]any{"is_starred": true}, nil)
	svc := NewDocumentService(fc)

	d, err := svc.Update(ctx, "4", DocumentForm{Title: "Renamed", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", d.Name)
	assert.Equal(t, "PUT", fc.requests[0].Method)
	assert.Equal(t, models.DocumentBody{Name: "Renamed", Content: "body"}, fc.requests[0].Body)

	starred, err := svc.ToggleStar(ctx, "4")
	require.NoError(t, err)
	assert.True(t, starred)

	require.NoError(t, svc.Delete(ctx, "4"))
	last := fc.requests[len(fc.requests)-1]
	assert.Equal(t, "DELETE", last.Method)
	assert.Equal(t, "/api/documents/4", last.Path)

	_, err = svc.Update(ctx, "4", DocumentForm{})
	assert.EqualError(t, err, "Document title is required")
	assert.Equal(t, 3, fc.calls())
}

func TestAnalysisService_Recent(t *testing.T) {
	fc := newFakeClient().on("GET", "/api/ai-tools/analyses", []models.Analysis{{ID: "1", Title: "Summary", Type: "summary"}}, nil)
	svc := NewAnalysisService(fc)

	out, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, url.Values{"limit": {"10"}}, fc.requests[0].Query)
}

func TestAnalysisService_GetDelete(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().on("GET", "/api/ai-tools/analyses/9", map[string]any{
		"id": 9, "title": "Review", "analysis_type": "literature_review",
		"analysis_metadata": map[string]any{"paper_count": 2},
	}, nil)
	svc := NewAnalysisService(fc)

	a, err := svc.Get(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, models.ID("9"), a.ID)
	assert.Equal(t, 2, a.Metadata.PaperCount)

	require.NoError(t, svc.Delete(ctx, "9"))
	assert.Equal(t, "DELETE", fc.requests[1].Method)
	assert.Equal(t, "/api/ai-tools/analyses/9", fc.requests[1].Path)
}

func TestAnalysisService_Generate(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	svc := NewAnalysisService(fc)

	require.NoError(t, svc.Generate(ctx, GenerateForm{Type: models.AnalysisLiteratureReview, PaperIDs: []models.ID{"1", "2"}}))
	require.Equal(t, 1, fc.calls())
	assert.Equal(t, "/api/ai-tools/literature-review", fc.requests[0].Path)
	body, ok := fc.requests[0].Body.(models.GenerateRequest)
	require.True(t, ok)
	assert.Equal(t, "literature review of 2 papers", body.Title)
	assert.Equal(t, []models.ID{"1", "2"}, body.PaperIDs)
	assert.NotNil(t, body.Metadata)

	require.NoError(t, svc.Generate(ctx, GenerateForm{Type: models.AnalysisSummary, PaperIDs: []models.ID{"1"}}))
	assert.Equal(t, "/api/ai-tools/summaries", fc.requests[1].Path)
}

func TestAnalysisService_GenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		form GenerateForm
		want string
	}{
		{"no papers", GenerateForm{Type: models.AnalysisInsights}, "Please select at least one paper"},
		{"review needs two", GenerateForm{Type: models.AnalysisLiteratureReview, PaperIDs: []models.ID{"1"}}, "Literature review requires at least 2 papers"},
		{"unknown type", GenerateForm{Type: "poem", PaperIDs: []models.ID{"1"}}, "Analysis type must be summary, insights or literature_review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			err := NewAnalysisService(fc).Generate(context.Background(), tt.form)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.want, ve.Error())
			assert.Zero(t, fc.calls())
		})
	}
}

func TestPaperService(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient().on("GET", "/api/papers", []map[string]any{
		{"id": 5, "title": "P", "authors": "Ada, Bob", "analyses": []map[string]any{{"id": 1, "analysis_type": "summary"}}},
	}, nil)
	svc := NewPaperService(fc)

	papers, err := svc.List(ctx, PaperFilter{WorkspaceID: "3"})
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.True(t, papers[0].HasAnalyses())
	assert.Equal(t, url.Values{"workspace_id": {"3"}}, fc.requests[0].Query)

	_, err = svc.List(ctx, PaperFilter{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"limit": {"5"}}, fc.requests[1].Query)

	_, err = svc.List(ctx, PaperFilter{})
	require.NoError(t, err)
	assert.Nil(t, fc.requests[2].Query)

	require.NoError(t, svc.Remove(ctx, "5", "3"))
	last := fc.requests[3]
	assert.Equal(t, "DELETE", last.Method)
	assert.Equal(t, "/api/papers/5", last.Path)
	assert.Equal(t, url.Values{"workspace_id": {"3"}}, last.Query)
}

func TestWorkspaceService_Get(t *testing.T) {
	fc := newFakeClient().on("GET", "/api/workspaces/3", map[string]any{"id": 3, "name": "ML", "papers_count": 4}, nil)

	w, err := NewWorkspaceService(fc).Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "ML", w.Name)
	assert.Equal(t, 4, w.PaperCount())
}
