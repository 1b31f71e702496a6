// Package harvest supplies publication records to classify. Sources are
// external collaborators: the classifier consumes their output and does not
// control how it is produced.
package harvest

import (
	"context"

	"fieldscope/internal/models"
)

// Source yields publication records for one author, file, or directory.
type Source interface {
	Papers(ctx context.Context) ([]models.PaperInput, error)
}
