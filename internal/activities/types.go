package activities

import "fieldscope/internal/models"

type LoadPapersInput struct {
	SourceType string `json:"source_type"`
	Path       string `json:"path,omitempty"`
	AuthorID   string `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type LoadPapersOutput struct {
	Papers []models.PaperInput `json:"papers"`
}

type ClassifyPaperInput struct {
	BatchID string            `json:"batch_id"`
	Paper   models.PaperInput `json:"paper"`
}

type ClassifyPaperOutput struct {
	Result models.Result `json:"result"`
}

type WriteBatchReportInput struct {
	BatchID    string          `json:"batch_id"`
	Results    []models.Result `json:"results"`
	FieldCount int             `json:"field_count"`
	Summary    map[string]any  `json:"summary"`
}

type WriteBatchReportOutput struct {
	ReportPath  string `json:"report_path"`
	SummaryPath string `json:"summary_path"`
}
