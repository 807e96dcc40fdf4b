package usecase

import (
	"fmt"

	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/entities"
)

func staleStageError(actual, expected entities.Stage) error {
	return fmt.Errorf("%w: expected stage %q, found %q", concurrency.ErrStaleState, expected, actual)
}
