package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/client/notify"
	"github.com/researchhub/hubcli/internal/client/services"
)

const (
	routeDashboard = "/dashboard"
	routeSearch    = "/search"
	routeAITools   = "/ai-tools"
	routeDocspace  = "/docspace"
	routeUpload    = "/upload"
)

const (
	idDashboard = "dashboard"
	idWorkspace = "workspace"
	idSearch    = "search"
	idImport    = "import"
	idDocuments = "documents"
	idAnalyses  = "analyses"
	idAnalysis  = "analysis"
	idPapers    = "papers"
	idGenerate  = "generate"
	idHome      = "home"
)

func (a *App) Dashboard(ctx context.Context) error {
	return a.enter(ctx, routeDashboard, idDashboard, "Failed to load dashboard", func(ctx context.Context) error {
		d, err := a.workspaceService.Dashboard(ctx)
		if err != nil {
			return err
		}

		a.printf("Welcome, %s\n", d.User.DisplayName())
		a.printf("workspaces: %d  papers: %d  analyzed: %d\n",
			d.Stats.TotalWorkspaces, d.Stats.TotalPapers, d.Stats.PapersAnalyzed)
		a.printWorkspaces(d.Workspaces)
		return nil
	})
}

func (a *App) Workspaces(ctx context.Context) error {
	return a.enter(ctx, routeDashboard, idWorkspace, "Failed to load workspaces", func(ctx context.Context) error {
		ws, err := a.workspaceService.List(ctx)
		if err != nil {
			return err
		}
		a.printWorkspaces(ws)
		return nil
	})
}

func (a *App) printWorkspaces(ws []models.Workspace) {
	if len(ws) == 0 {
		a.printf("No workspaces yet\n")
		return
	}
	for _, w := range ws {
		a.printf("%-6s %-30s %d papers\n", w.ID, w.Name, w.PaperCount())
	}
}

func (a *App) MkWorkspace(ctx context.Context) error {
	return a.enter(ctx, routeDashboard, idWorkspace, "Failed to create workspace", func(ctx context.Context) error {
		var (
			form services.WorkspaceForm
			err  error
		)
		if form.Name, err = getSimpleText(a.reader, "Workspace name", a.out); err != nil {
			return err
		}
		if form.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
			return err
		}

		w, err := a.workspaceService.Create(ctx, form)
		if err != nil {
			return err
		}
		a.notices.Push(idWorkspace, notify.Success, fmt.Sprintf("Workspace %q created (id %s)", w.Name, w.ID))
		return nil
	})
}

func (a *App) RmWorkspace(ctx context.Context, id string) error {
	return a.enter(ctx, routeDashboard, idWorkspace, "Failed to delete workspace", func(ctx context.Context) error {
		if err := a.workspaceService.Delete(ctx, models.ID(id)); err != nil {
			return err
		}
		a.notices.Push(idWorkspace, notify.Success, "Workspace deleted")
		return nil
	})
}

func (a *App) Search(ctx context.Context, query string) error {
	return a.enter(ctx, routeSearch, idSearch, "Search failed", func(ctx context.Context) error {
		results, err := a.searchService.Search(ctx, services.SearchForm{Query: query})
		if err != nil {
			return err
		}

		a.lastResults = results
		if len(results) == 0 {
			a.printf("No papers found\n")
			return nil
		}
		for i, r := range results {
			a.printf("%2d. %s\n    %s (%s, %s)\n", i+1, r.Title, r.Authors, r.Source, r.Date)
		}
		return nil
	})
}

// Import adds the n-th paper of the last search (1-based) to a workspace.
func (a *App) Import(ctx context.Context, n, workspace string) error {
	return a.enter(ctx, routeSearch, idImport, "Failed to import paper", func(ctx context.Context) error {
		i, err := strconv.Atoi(n)
		if err != nil || i < 1 || i > len(a.lastResults) {
			a.notices.Push(idImport, notify.Error, "Pick a paper number from the last search")
			return nil
		}

		paper := a.lastResults[i-1]
		if err := a.searchService.Import(ctx, paper, models.ID(workspace)); err != nil {
			return err
		}
		a.notices.Push(idImport, notify.Success, fmt.Sprintf("Imported %q", paper.Title))
		return nil
	})
}

func (a *App) Docs(ctx context.Context) error {
	return a.enter(ctx, routeDocspace, idDocuments, "Failed to load documents", func(ctx context.Context) error {
		docs, err := a.documentService.List(ctx)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			a.printf("No documents yet\n")
			return nil
		}
		for _, d := range docs {
			star := " "
			if d.Starred {
				star = "*"
			}
			a.printf("%s %-6s %s\n", star, d.ID, d.Name)
		}
		return nil
	})
}

func (a *App) MkDoc(ctx context.Context) error {
	return a.enter(ctx, routeDocspace, idDocuments, "Failed to create document", func(ctx context.Context) error {
		var (
			form services.DocumentForm
			err  error
		)
		if form.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
			return err
		}
		if form.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
			return err
		}

		d, err := a.documentService.Create(ctx, form)
		if err != nil {
			return err
		}
		a.notices.Push(idDocuments, notify.Success, fmt.Sprintf("Document %q created", d.Name))
		return nil
	})
}

func (a *App) Analyses(ctx context.Context) error {
	return a.enter(ctx, routeAITools, idAnalyses, "Failed to load analyses", func(ctx context.Context) error {
		list, err := a.analysisService.Recent(ctx, 0)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			a.printf("No analyses yet\n")
			return nil
		}
		for _, an := range list {
			a.printf("%-6s %-20s %s\n", an.ID, an.Type, an.Title)
		}
		return nil
	})
}

// Stats prints the request outcome counters of this process.
func (a *App) Stats(context.Context) error {
	var b strings.Builder
	for _, row := range a.stats.Summary() {
		fmt.Fprintf(&b, "%-15s %.0f\n", row.Outcome, row.Count)
	}
	fmt.Fprintf(&b, "%-15s %d\n", "redirects", a.router.Redirects())
	a.printf("%s", b.String())
	return nil
}

// EditDoc rewrites a document. Blank answers keep the current value.
func (a *App) EditDoc(ctx context.Context, id string) error {
	return a.enter(ctx, routeDocspace, idDocuments, "Failed to save", func(ctx context.Context) error {
		docs, err := a.documentService.List(ctx)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(docs, func(d models.Document) bool { return d.ID == models.ID(id) })
		if i < 0 {
			a.notices.Push(idDocuments, notify.Error, "Document not found")
			return nil
		}
		cur := docs[i]

		form := services.DocumentForm{Title: cur.Name, Content: cur.Content, Starred: cur.Starred}
		title, err := getSimpleText(a.reader, "Title ["+cur.Name+"]", a.out)
		if err != nil {
			return err
		}
		if title != "" {
			form.Title = title
		}
		content, err := GetMultiline(a.reader, "Content (blank keeps current)", a.out)
		if err != nil {
			return err
		}
		if content != "" {
			form.Content = content
		}

		if _, err := a.documentService.Update(ctx, cur.ID, form); err != nil {
			return err
		}
		a.notices.Push(idDocuments, notify.Success, "Document saved successfully!")
		return nil
	})
}

func (a *App) RmDoc(ctx context.Context, id string) error {
	return a.enter(ctx, routeDocspace, idDocuments, "Failed to delete", func(ctx context.Context) error {
		if err := a.documentService.Delete(ctx, models.ID(id)); err != nil {
			return err
		}
		a.notices.Push(idDocuments, notify.Success, "Document deleted successfully")
		return nil
	})
}

func (a *App) Star(ctx context.Context, id string) error {
	return a.enter(ctx, routeDocspace, idDocuments, "Failed to update star", func(ctx context.Context) error {
		starred, err := a.documentService.ToggleStar(ctx, models.ID(id))
		if err != nil {
			return err
		}
		msg := "Removed from starred"
		if starred {
			msg = "Added to starred"
		}
		a.notices.Push(idDocuments, notify.Success, msg)
		return nil
	})
}
