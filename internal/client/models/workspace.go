package models

// Workspace groups papers and analyses.
type Workspace struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Created     string `json:"created,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	Papers      int    `json:"papers,omitempty"`
	PapersCount int    `json:"papers_count,omitempty"`
}

// PaperCount reconciles the dashboard ("papers") and detail ("papers_count")
// spellings of the same number.
func (w Workspace) PaperCount() int {
	if w.Papers > 0 {
		return w.Papers
	}
	return w.PapersCount
}

// NewWorkspace is the body of POST /api/workspaces/.
type NewWorkspace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

type DashboardStats struct {
	TotalWorkspaces int `json:"total_workspaces"`
	TotalPapers     int `json:"total_papers"`
	PapersAnalyzed  int `json:"papers_analyzed"`
	TotalAnalyses   int `json:"total_analyses,omitempty"`
}

// Dashboard is the body of GET /api/dashboard.
type Dashboard struct {
	User       User           `json:"user"`
	Stats      DashboardStats `json:"stats"`
	Workspaces []Workspace    `json:"workspaces"`
}
