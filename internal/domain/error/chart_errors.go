// Package error defines domain-specific errors for the chart of accounts service.
package error

import (
	"errors"
	"fmt"
)

// Chart domain errors.
var (
	// ErrChartNotFound is returned when no chart has the requested ID.
	ErrChartNotFound = errors.New("chart not found")

	// ErrAccountNotFound is returned when no account of the chart has the requested code.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountCodeExists is returned when an account code is already used in the chart.
	ErrAccountCodeExists = errors.New("account code already exists")

	// ErrInvalidChartType is returned when the chart type is not a supported standard.
	ErrInvalidChartType = errors.New("invalid chart type")

	// ErrInvalidChartVersion is returned when the chart version is empty or too long.
	ErrInvalidChartVersion = errors.New("invalid chart version")

	// ErrInvalidAccountCode is returned when an account code is empty, padded or too long.
	ErrInvalidAccountCode = errors.New("invalid account code")

	// ErrInvalidAccountName is returned when an account name is blank or too long.
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrInvalidPagination is returned when start or limit is negative.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrStorage is returned when the store fails.
	ErrStorage = errors.New("storage failure")
)

// ChartErrorCode defines error codes for chart errors.
// Format: COA-XXYYYY where XX is category and YYYY is specific error.
type ChartErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidChartType    ChartErrorCode = "COA-010001"
	ErrCodeInvalidChartVersion ChartErrorCode = "COA-010002"
	ErrCodeInvalidAccountCode  ChartErrorCode = "COA-010003"
	ErrCodeInvalidAccountName  ChartErrorCode = "COA-010004"
	ErrCodeInvalidPagination   ChartErrorCode = "COA-010005"
	ErrCodeInvalidRequest      ChartErrorCode = "COA-010006"

	// Lookup and conflict errors (02XXXX)
	ErrCodeChartNotFound     ChartErrorCode = "COA-020001"
	ErrCodeAccountNotFound   ChartErrorCode = "COA-020002"
	ErrCodeAccountCodeExists ChartErrorCode = "COA-020003"

	// Storage errors (05XXXX)
	ErrCodeStorage ChartErrorCode = "COA-050001"
)

// ChartError represents a chart error with code and message.
type ChartError struct {
	Code    ChartErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChartError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError with the given code and message.
func NewChartError(code ChartErrorCode, message string, err error) *ChartError {
	return &ChartError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewChartNotFoundError reports a missing chart, naming its ID.
func NewChartNotFoundError(id int64) *ChartError {
	return NewChartError(
		ErrCodeChartNotFound,
		fmt.Sprintf("chart with ID=%d not found", id),
		ErrChartNotFound,
	)
}

// NewAccountNotFoundError reports a missing account, naming its chart and code.
func NewAccountNotFoundError(chartID int64, code string) *ChartError {
	return NewChartError(
		ErrCodeAccountNotFound,
		fmt.Sprintf("account %q not found in chart with ID=%d", code, chartID),
		ErrAccountNotFound,
	)
}

// NewAccountCodeExistsError reports an account code collision within a chart.
func NewAccountCodeExistsError(chartID int64, code string) *ChartError {
	return NewChartError(
		ErrCodeAccountCodeExists,
		fmt.Sprintf("account %q already exists in chart with ID=%d", code, chartID),
		ErrAccountCodeExists,
	)
}

// StorageError wraps a store failure with the operation and chart it concerned.
type StorageError struct {
	Op      string
	ChartID int64
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.ChartID > 0 {
		return fmt.Sprintf("storage error while %s (chart ID=%d): %v", e.Op, e.ChartID, e.Err)
	}
	return fmt.Sprintf("storage error while %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying store error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err as a storage failure of op. chartID is 0 when
// the operation is not scoped to a single chart.
func NewStorageError(op string, chartID int64, err error) error {
	return &StorageError{Op: op, ChartID: chartID, Err: err}
}

// CodeOf returns the domain error code carried by err, or ErrCodeStorage for
// store failures. The second result is false for errors outside the taxonomy.
func CodeOf(err error) (ChartErrorCode, bool) {
	var chartErr *ChartError
	if errors.As(err, &chartErr) {
		return chartErr.Code, true
	}
	if errors.Is(err, ErrStorage) {
		return ErrCodeStorage, true
	}
	return "", false
}
