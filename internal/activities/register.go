package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.LoadPapersActivity)
	w.RegisterActivity(a.ClassifyPaperActivity)
	w.RegisterActivity(a.WriteBatchReportActivity)
}
