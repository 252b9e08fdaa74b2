package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData indicates that no rate table has been persisted yet, or that the
// persisted file could not be read.
var ErrNoData = errors.New("no exchange rate data available")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// UnknownColumnsError reports currency pair columns that were requested but do
// not exist in the persisted table. It is returned by the export path, which
// rejects the whole request instead of silently dropping unknown pairs.
type UnknownColumnsError struct {
	Columns []string
}

func (e *UnknownColumnsError) Error() string {
	return fmt.Sprintf("unknown columns: %s", strings.Join(e.Columns, ", "))
}
