package execution

import (
	"time"

	"fixcheck/internal/domain"
)

// Executor loads fixture files and returns one result per file, in input
// order
type Executor interface {
	SetProgress(progress Progress)
	Execute(files []string) ([]domain.LoadResult, time.Duration, error)
}

// Progress receives loading progress
type Progress interface {
	Update(loaded, failed int)
	Finish()
}
