package workflows

import (
	"fmt"
	"time"

	"fieldscope/internal/activities"
	"fieldscope/internal/classifier"
	"fieldscope/internal/models"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const QueryGetProgress = "GetProgress"

// BatchClassifyWorkflow classifies every paper in a batch. A paper that
// cannot be classified is recorded as a failed result; it never aborts the
// rest of the batch.
func BatchClassifyWorkflow(ctx workflow.Context, input BatchClassifyInput) (BatchClassifyOutput, error) {
	progress := BatchProgress{
		BatchID:  input.BatchID,
		PerPaper: map[string]string{},
	}
	if err := workflow.SetQueryHandler(ctx, QueryGetProgress, func() (BatchProgress, error) {
		return progress, nil
	}); err != nil {
		return BatchClassifyOutput{}, err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	papers := input.Papers
	if len(papers) == 0 {
		var loadOut activities.LoadPapersOutput
		if err := workflow.ExecuteActivity(ctx, "LoadPapersActivity", activities.LoadPapersInput{
			SourceType: input.SourceType,
			Path:       input.SourcePath,
			AuthorID:   input.AuthorID,
			AuthorName: input.AuthorName,
			MaxResults: input.MaxResults,
		}).Get(ctx, &loadOut); err != nil {
			return BatchClassifyOutput{}, err
		}
		papers = loadOut.Papers
	}
	progress.Total = len(papers)

	results := make([]models.Result, 0, len(papers))
	for i, paper := range papers {
		key := paperKey(i, paper.Title)
		progress.PerPaper[key] = "classifying"
		var out activities.ClassifyPaperOutput
		err := workflow.ExecuteActivity(ctx, "ClassifyPaperActivity", activities.ClassifyPaperInput{
			BatchID: input.BatchID,
			Paper:   paper,
		}).Get(ctx, &out)
		progress.Done++
		if err != nil {
			progress.Failed++
			progress.PerPaper[key] = "failed"
			results = append(results, models.Result{
				Title:       paper.Title,
				Abstract:    paper.Abstract,
				Fields:      classifier.PlaceholderFields(input.FieldCount),
				Status:      models.StatusError,
				ErrorDetail: err.Error(),
			})
			continue
		}
		res := out.Result
		if res.Success() {
			progress.Succeeded++
			progress.PerPaper[key] = "done"
		} else {
			progress.Failed++
			progress.PerPaper[key] = "failed"
		}
		if res.Cached {
			progress.Cached++
		}
		results = append(results, res)
	}

	var reportOut activities.WriteBatchReportOutput
	if err := workflow.ExecuteActivity(ctx, "WriteBatchReportActivity", activities.WriteBatchReportInput{
		BatchID:    input.BatchID,
		Results:    results,
		FieldCount: input.FieldCount,
		Summary: map[string]any{
			"batch_id":     input.BatchID,
			"total":        progress.Total,
			"succeeded":    progress.Succeeded,
			"failed":       progress.Failed,
			"cached":       progress.Cached,
			"generated_at": workflow.Now(ctx),
		},
	}).Get(ctx, &reportOut); err != nil {
		return BatchClassifyOutput{}, err
	}

	return BatchClassifyOutput{
		BatchID:     input.BatchID,
		Total:       progress.Total,
		Succeeded:   progress.Succeeded,
		Failed:      progress.Failed,
		Cached:      progress.Cached,
		ReportPath:  reportOut.ReportPath,
		SummaryPath: reportOut.SummaryPath,
	}, nil
}

func paperKey(idx int, title string) string {
	return fmt.Sprintf("%03d:%s", idx, title)
}
