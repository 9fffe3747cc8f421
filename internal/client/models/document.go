package models

// Document is a rich-text page of the document space.
type Document struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Content     string `json:"content,omitempty"`
	Type        string `json:"document_type,omitempty"`
	Starred     bool   `json:"is_starred"`
	WorkspaceID *ID    `json:"workspace_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// DocumentBody is the JSON body of POST /api/documents and
// PUT /api/documents/{id}.
type DocumentBody struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"document_type,omitempty"`
	Starred bool   `json:"is_starred"`
}

// StarResult is the body of POST /api/documents/{id}/star.
type StarResult struct {
	Starred bool `json:"is_starred"`
}
