package workflows

import "fieldscope/internal/models"

type BatchClassifyInput struct {
	BatchID    string              `json:"batch_id"`
	SourceType string              `json:"source_type,omitempty"`
	SourcePath string              `json:"source_path,omitempty"`
	AuthorID   string              `json:"author_id,omitempty"`
	AuthorName string              `json:"author_name,omitempty"`
	MaxResults int                 `json:"max_results,omitempty"`
	Papers     []models.PaperInput `json:"papers,omitempty"`
	FieldCount int                 `json:"field_count,omitempty"`
}

type BatchClassifyOutput struct {
	BatchID     string `json:"batch_id"`
	Total       int    `json:"total"`
	Succeeded   int    `json:"succeeded"`
	Failed      int    `json:"failed"`
	Cached      int    `json:"cached"`
	ReportPath  string `json:"report_path"`
	SummaryPath string `json:"summary_path"`
}

type BatchProgress struct {
	BatchID   string            `json:"batch_id"`
	Total     int               `json:"total"`
	Done      int               `json:"done"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Cached    int               `json:"cached"`
	PerPaper  map[string]string `json:"per_paper_status"`
}
