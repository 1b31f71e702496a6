package workflows

import (
	"context"
	"errors"
	"testing"

	"fieldscope/internal/activities"
	"fieldscope/internal/classifier"
	"fieldscope/internal/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
)

func registerActivityName[T any](env *testsuite.TestWorkflowEnvironment, name string, fn T) {
	env.RegisterActivityWithOptions(fn, activity.RegisterOptions{Name: name})
}

func successResult(title string) models.Result {
	return models.Result{
		Title:  title,
		Status: models.StatusSuccess,
		Fields: []models.FieldAssignment{{Code: "1702", Name: "Artificial Intelligence", Percentage: 100}},
	}
}

func newBatchEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(BatchClassifyWorkflow)
	registerActivityName(env, "LoadPapersActivity", func(context.Context, activities.LoadPapersInput) (activities.LoadPapersOutput, error) {
		return activities.LoadPapersOutput{}, nil
	})
	registerActivityName(env, "ClassifyPaperActivity", func(context.Context, activities.ClassifyPaperInput) (activities.ClassifyPaperOutput, error) {
		return activities.ClassifyPaperOutput{}, nil
	})
	registerActivityName(env, "WriteBatchReportActivity", func(context.Context, activities.WriteBatchReportInput) (activities.WriteBatchReportOutput, error) {
		return activities.WriteBatchReportOutput{}, nil
	})
	return env
}

func TestBatchClassifyWorkflowInlinePapers(t *testing.T) {
	env := newBatchEnv(t)

	papers := []models.PaperInput{{Title: "P1"}, {Title: "P2"}}
	env.OnActivity("ClassifyPaperActivity", mock.Anything, mock.Anything).Return(
		func(_ context.Context, in activities.ClassifyPaperInput) (activities.ClassifyPaperOutput, error) {
			return activities.ClassifyPaperOutput{Result: successResult(in.Paper.Title)}, nil
		})
	env.OnActivity("WriteBatchReportActivity", mock.Anything, mock.Anything).Return(
		activities.WriteBatchReportOutput{ReportPath: "/out/results.csv", SummaryPath: "/out/summary.json"}, nil)

	env.ExecuteWorkflow(BatchClassifyWorkflow, BatchClassifyInput{BatchID: "b1", Papers: papers})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out BatchClassifyOutput
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, 2, out.Total)
	require.Equal(t, 2, out.Succeeded)
	require.Equal(t, 0, out.Failed)
	require.Equal(t, "/out/results.csv", out.ReportPath)
}

func TestBatchClassifyWorkflowLoadsFromSource(t *testing.T) {
	env := newBatchEnv(t)

	env.OnActivity("LoadPapersActivity", mock.Anything, activities.LoadPapersInput{SourceType: "csv", Path: "/in/papers.csv"}).Return(
		activities.LoadPapersOutput{Papers: []models.PaperInput{{Title: "Loaded"}}}, nil)
	env.OnActivity("ClassifyPaperActivity", mock.Anything, mock.Anything).Return(
		activities.ClassifyPaperOutput{Result: successResult("Loaded")}, nil)
	env.OnActivity("WriteBatchReportActivity", mock.Anything, mock.Anything).Return(
		activities.WriteBatchReportOutput{}, nil)

	env.ExecuteWorkflow(BatchClassifyWorkflow, BatchClassifyInput{BatchID: "b2", SourceType: "csv", SourcePath: "/in/papers.csv"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out BatchClassifyOutput
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, 1, out.Total)
	require.Equal(t, 1, out.Succeeded)
}

func TestBatchClassifyWorkflowIsolatesFailedPapers(t *testing.T) {
	env := newBatchEnv(t)

	const fieldCount = 4
	papers := []models.PaperInput{{Title: "Good"}, {Title: "Bad"}, {Title: "Broken"}, {Title: "Also Good"}}
	env.OnActivity("ClassifyPaperActivity", mock.Anything, mock.Anything).Return(
		func(_ context.Context, in activities.ClassifyPaperInput) (activities.ClassifyPaperOutput, error) {
			switch in.Paper.Title {
			case "Bad":
				return errorOutput(in.Paper.Title, fieldCount), nil
			case "Broken":
				return activities.ClassifyPaperOutput{}, errors.New("postgres unavailable")
			}
			return activities.ClassifyPaperOutput{Result: successResult(in.Paper.Title)}, nil
		})
	var reported activities.WriteBatchReportInput
	env.OnActivity("WriteBatchReportActivity", mock.Anything, mock.Anything).Return(
		func(_ context.Context, in activities.WriteBatchReportInput) (activities.WriteBatchReportOutput, error) {
			reported = in
			return activities.WriteBatchReportOutput{}, nil
		})

	env.ExecuteWorkflow(BatchClassifyWorkflow, BatchClassifyInput{BatchID: "b3", Papers: papers, FieldCount: fieldCount})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out BatchClassifyOutput
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, 4, out.Total)
	require.Equal(t, 2, out.Succeeded)
	require.Equal(t, 2, out.Failed)

	require.Len(t, reported.Results, 4)
	require.Equal(t, "Good", reported.Results[0].Title)
	require.Equal(t, "Also Good", reported.Results[3].Title)
	for _, idx := range []int{1, 2} {
		res := reported.Results[idx]
		require.Equal(t, models.StatusError, res.Status)
		require.NotEmpty(t, res.ErrorDetail)
		require.Len(t, res.Fields, fieldCount)
		var total float64
		for _, f := range res.Fields {
			total += f.Percentage
		}
		require.InDelta(t, 100, total, 0.001)
	}
}

func TestBatchClassifyWorkflowLoadFailureAborts(t *testing.T) {
	env := newBatchEnv(t)

	env.OnActivity("LoadPapersActivity", mock.Anything, mock.Anything).Return(
		activities.LoadPapersOutput{}, errors.New("open csv: no such file"))

	env.ExecuteWorkflow(BatchClassifyWorkflow, BatchClassifyInput{BatchID: "b4", SourceType: "csv", SourcePath: "/missing.csv"})
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}

func errorOutput(title string, fieldCount int) activities.ClassifyPaperOutput {
	return activities.ClassifyPaperOutput{Result: models.Result{
		Title:       title,
		Fields:      classifier.PlaceholderFields(fieldCount),
		Status:      models.StatusError,
		ErrorDetail: "completion failed: quota exceeded",
	}}
}
