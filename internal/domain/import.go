package domain

import (
	"context"
	"io"
)

// ImportResult reports the outcome of a bulk CSV import.
// Success is true iff no errors accumulated; rejected rows keep their
// 1-based source row number (the header counts as row 1).
type ImportResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

type ImportUsecase interface {
	ImportContacts(ctx context.Context, file io.Reader) (*ImportResult, error)
}
