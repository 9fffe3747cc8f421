package models

// Analysis kinds accepted by the AI tools.
const (
	AnalysisSummary          = "summary"
	AnalysisInsights         = "insights"
	AnalysisLiteratureReview = "literature_review"
)

// Analysis is an AI-generated summary, insight set or literature review.
type Analysis struct {
	ID        ID               `json:"id"`
	Title     string           `json:"title"`
	Type      string           `json:"analysis_type"`
	Content   string           `json:"content,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
	PaperID   *ID              `json:"paper_id,omitempty"`
	Metadata  AnalysisMetadata `json:"analysis_metadata"`
}

// AnalysisMetadata names the papers an analysis was generated from.
type AnalysisMetadata struct {
	PaperIDs    []ID     `json:"paper_ids,omitempty"`
	PaperCount  int      `json:"paper_count,omitempty"`
	PaperTitles []string `json:"paper_titles,omitempty"`
}

// GenerateRequest is the body of POST /api/ai-tools/{summaries|insights|literature-review}.
// Generation runs on the server; the result shows up in the analysis list.
type GenerateRequest struct {
	PaperIDs []ID           `json:"paper_ids"`
	Type     string         `json:"analysis_type"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}
