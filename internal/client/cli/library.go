package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/client/notify"
	"github.com/researchhub/hubcli/internal/client/services"
	"github.com/researchhub/hubcli/internal/common"
)

const recentUploads = 5

func workspaceRoute(id string) string { return "/workspaces/" + id }
func analysisRoute(id string) string  { return "/analysis/" + id }

// Home shows the landing view. It is public and never redirects.
func (a *App) Home(ctx context.Context) error {
	return a.enter(ctx, common.LandingRoute, idHome, "", func(context.Context) error {
		a.printf("ResearchHub: search papers, organise workspaces, generate AI analyses.\n")
		if !a.isLoggedIn() {
			a.printf("Type 'login' or 'register' to get started.\n")
		}
		return nil
	})
}

// Workspace prints one workspace with its papers.
func (a *App) Workspace(ctx context.Context, id string) error {
	return a.enter(ctx, workspaceRoute(id), idWorkspace, "Failed to load workspace", func(ctx context.Context) error {
		w, err := a.workspaceService.Get(ctx, models.ID(id))
		if err != nil {
			return err
		}
		papers, err := a.paperService.List(ctx, services.PaperFilter{WorkspaceID: w.ID})
		if err != nil {
			return err
		}

		a.printf("%s (%d papers)\n", w.Name, w.PaperCount())
		if w.Description != "" {
			a.printf("%s\n", w.Description)
		}
		a.printPapers(papers)
		return nil
	})
}

// RmPaper takes a paper out of a workspace.
func (a *App) RmPaper(ctx context.Context, paper, workspace string) error {
	return a.enter(ctx, workspaceRoute(workspace), idPapers, "Failed to remove paper", func(ctx context.Context) error {
		if err := a.paperService.Remove(ctx, models.ID(paper), models.ID(workspace)); err != nil {
			return err
		}
		a.notices.Push(idPapers, notify.Success, "Paper removed from workspace")
		return nil
	})
}

// Papers lists the library, the selection pool for generate.
func (a *App) Papers(ctx context.Context) error {
	return a.enter(ctx, routeAITools, idPapers, "Failed to load papers", func(ctx context.Context) error {
		papers, err := a.paperService.List(ctx, services.PaperFilter{})
		if err != nil {
			return err
		}
		a.printPapers(papers)
		return nil
	})
}

// Uploads lists the most recently added papers.
func (a *App) Uploads(ctx context.Context) error {
	return a.enter(ctx, routeUpload, idPapers, "Failed to load recent papers", func(ctx context.Context) error {
		papers, err := a.paperService.List(ctx, services.PaperFilter{Limit: recentUploads})
		if err != nil {
			return err
		}
		a.printPapers(papers)
		return nil
	})
}

func (a *App) printPapers(papers []models.Paper) {
	if len(papers) == 0 {
		a.printf("No papers yet\n")
		return
	}
	for _, p := range papers {
		mark := " "
		if p.HasAnalyses() {
			mark = "A"
		}
		a.printf("%s %-6s %s\n", mark, p.ID, p.Title)
		if len(p.Authors) > 0 {
			a.printf("         %s\n", p.Authors)
		}
	}
}

// Analysis prints one analysis in full.
func (a *App) Analysis(ctx context.Context, id string) error {
	return a.enter(ctx, analysisRoute(id), idAnalysis, "Failed to load analysis", func(ctx context.Context) error {
		an, err := a.analysisService.Get(ctx, models.ID(id))
		if isNotFound(err) {
			a.notices.Push(idAnalysis, notify.Error, "Analysis not found")
			return nil
		}
		if err != nil {
			return err
		}

		a.printf("%s [%s]\n", an.Title, an.Type)
		if an.CreatedAt != "" {
			a.printf("created: %s\n", an.CreatedAt)
		}
		if n := an.Metadata.PaperCount; n > 0 {
			a.printf("papers: %d\n", n)
		}
		for _, t := range an.Metadata.PaperTitles {
			a.printf("  - %s\n", t)
		}
		a.printf("\n%s\n", an.Content)
		return nil
	})
}

// RmAnalysis deletes an analysis and goes back to the AI tools view.
func (a *App) RmAnalysis(ctx context.Context, id string) error {
	return a.enter(ctx, analysisRoute(id), idAnalysis, "Failed to delete analysis", func(ctx context.Context) error {
		if err := a.analysisService.Delete(ctx, models.ID(id)); err != nil {
			return err
		}
		a.router.Navigate(routeAITools)
		a.notices.Push(idAnalysis, notify.Success, "Analysis deleted")
		return nil
	})
}

// Generate asks the server to analyse the given papers. kind is one of
// summary, insights or literature_review.
func (a *App) Generate(ctx context.Context, kind string, paperIDs []string) error {
	return a.enter(ctx, routeAITools, idGenerate, "Generation failed", func(ctx context.Context) error {
		form := services.GenerateForm{Type: kind}
		for _, id := range paperIDs {
			form.PaperIDs = append(form.PaperIDs, models.ID(id))
		}

		if err := a.analysisService.Generate(ctx, form); err != nil {
			return err
		}
		label := strings.ReplaceAll(kind, "_", " ")
		a.notices.Push(idGenerate, notify.Success, fmt.Sprintf("%s generation started! It will appear in recent analyses shortly", label))
		return nil
	})
}

func isNotFound(err error) bool {
	var rf *client.RequestFailedError
	return errors.As(err, &rf) && rf.Status == http.StatusNotFound
}
