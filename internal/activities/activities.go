package activities

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"fieldscope/internal/cache"
	"fieldscope/internal/classifier"
	"fieldscope/internal/config"
	"fieldscope/internal/export"
	"fieldscope/internal/harvest"
	"fieldscope/internal/providers"
	"fieldscope/internal/storage"
	"fieldscope/internal/util"

	"github.com/google/uuid"
)

type Activities struct {
	cfg         config.Config
	svc         *classifier.Service
	resultRepo  *storage.ClassificationRepo
	callLogRepo *storage.CallLogRepo
}

func New(cfg config.Config, db *storage.DB) (*Activities, error) {
	var store cache.Store
	var resultRepo *storage.ClassificationRepo
	var callLogRepo *storage.CallLogRepo
	if db != nil {
		resultRepo = storage.NewClassificationRepo(db)
		callLogRepo = storage.NewCallLogRepo(db)
		if cfg.CacheEnabled {
			store = resultRepo
		}
	}
	svc, err := classifier.New(cfg, nil, store)
	if err != nil {
		return nil, err
	}
	return &Activities{
		cfg:         cfg,
		svc:         svc,
		resultRepo:  resultRepo,
		callLogRepo: callLogRepo,
	}, nil
}

func (a *Activities) LoadPapersActivity(ctx context.Context, in LoadPapersInput) (LoadPapersOutput, error) {
	var src harvest.Source
	switch in.SourceType {
	case "csv":
		src = &harvest.CSVSource{Path: in.Path}
	case "openalex":
		src = &harvest.OpenAlexSource{
			AuthorID:   in.AuthorID,
			AuthorName: in.AuthorName,
			MaxResults: in.MaxResults,
			Mailto:     a.cfg.OpenAlexMailto,
		}
	case "pdf":
		src = &harvest.PDFDirSource{Dir: in.Path}
	default:
		return LoadPapersOutput{}, fmt.Errorf("unknown source type: %s", in.SourceType)
	}
	papers, err := src.Papers(ctx)
	if err != nil {
		return LoadPapersOutput{}, err
	}
	if len(papers) == 0 {
		return LoadPapersOutput{}, util.ErrEmptyBatch
	}
	return LoadPapersOutput{Papers: papers}, nil
}

func (a *Activities) ClassifyPaperActivity(ctx context.Context, in ClassifyPaperInput) (ClassifyPaperOutput, error) {
	res := a.svc.Classify(ctx, in.Paper.Title, in.Paper.Abstract)

	if a.resultRepo != nil {
		key := cache.Key(in.Paper.Title, in.Paper.Abstract)
		if err := a.resultRepo.UpsertResult(ctx, in.BatchID, key, res); err != nil {
			log.Printf("persist result for %q: %v", in.Paper.Title, err)
		}
	}
	if a.callLogRepo != nil && !res.Cached {
		errType := ""
		if !res.Success() {
			errType = string(providers.ClassifyError(fmt.Errorf("%s", res.ErrorDetail)))
		}
		rec := storage.CallRecord{
			CallID:    uuid.NewString(),
			BatchID:   in.BatchID,
			Title:     in.Paper.Title,
			Provider:  res.Provider,
			Model:     res.Model,
			Status:    res.Status,
			ErrorType: errType,
		}
		if err := a.callLogRepo.Insert(ctx, rec); err != nil {
			log.Printf("log call for %q: %v", in.Paper.Title, err)
		}
	}
	return ClassifyPaperOutput{Result: res}, nil
}

func (a *Activities) WriteBatchReportActivity(ctx context.Context, in WriteBatchReportInput) (WriteBatchReportOutput, error) {
	_ = ctx
	base := filepath.Join(a.cfg.DataOutRoot, "batches", in.BatchID)
	if err := util.EnsureDir(base); err != nil {
		return WriteBatchReportOutput{}, err
	}
	reportPath := filepath.Join(base, "results.csv")
	if err := export.WriteResultsCSV(reportPath, in.Results, in.FieldCount); err != nil {
		return WriteBatchReportOutput{}, err
	}
	summaryPath := filepath.Join(base, "summary.json")
	if err := util.WriteJSONAtomic(summaryPath, in.Summary); err != nil {
		return WriteBatchReportOutput{}, err
	}
	return WriteBatchReportOutput{ReportPath: reportPath, SummaryPath: summaryPath}, nil
}
