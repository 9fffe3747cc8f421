package models

// SearchRequest is the body of POST /api/search/papers. A nil Source
// searches every source.
type SearchRequest struct {
	Query      string  `json:"query"`
	Source     *string `json:"source"`
	MaxResults int     `json:"max_results"`
}

// SearchResult is one hit from the external paper index.
type SearchResult struct {
	Title     string     `json:"title"`
	Authors   StringList `json:"authors"`
	Abstract  string     `json:"abstract"`
	Source    string     `json:"source"`
	URL       string     `json:"url"`
	PDFURL    string     `json:"pdf_url,omitempty"`
	DOI       string     `json:"doi,omitempty"`
	Date      string     `json:"date"`
	Citations int        `json:"citations"`
	Tags      StringList `json:"tags"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ImportRequest is the body of POST /api/search/import: the search hit plus
// the destination workspace.
type ImportRequest struct {
	SearchResult
	WorkspaceID ID `json:"workspace_id"`
}

// Paper is a paper stored in the user's library, optionally in a workspace.
type Paper struct {
	ID       ID         `json:"id"`
	Title    string     `json:"title"`
	Authors  StringList `json:"authors"`
	Source   string     `json:"source,omitempty"`
	Date     string     `json:"date,omitempty"`
	Abstract string     `json:"abstract,omitempty"`
	Tags     StringList `json:"tags,omitempty"`
	Analyzed bool       `json:"analyzed,omitempty"`
	Starred  bool       `json:"starred,omitempty"`
	Analyses []Analysis `json:"analyses,omitempty"`
}

// HasAnalyses reports whether the paper has been analysed at least once.
func (p Paper) HasAnalyses() bool {
	return p.Analyzed || len(p.Analyses) > 0
}
