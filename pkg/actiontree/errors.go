package actiontree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/travigo/cab/pkg/database"
	"github.com/travigo/cab/pkg/packeddate"
)

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s %d", e.Entity, e.ID)
}

// CyclicActionError is returned when a complex action is reached again while
// it is still being expanded. Path lists the expansion chain ending in ActionID.
type CyclicActionError struct {
	ActionID int64
	Path     []int64
}

func (e *CyclicActionError) Error() string {
	chain := make([]string, len(e.Path))
	for i, id := range e.Path {
		chain[i] = fmt.Sprint(id)
	}

	return fmt.Sprintf("complex action %d references itself (%s)", e.ActionID, strings.Join(chain, " -> "))
}

type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

type ErrorKind string

const (
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindInvalidDate  ErrorKind = "invalid_date"
	ErrorKindCyclicAction ErrorKind = "cyclic_action"
	ErrorKindStore        ErrorKind = "store"
	ErrorKindUnknown      ErrorKind = "unknown"
)

func Classify(err error) ErrorKind {
	var notFound *NotFoundError
	var invalidDate *packeddate.InvalidDateError
	var cyclic *CyclicActionError
	var storeError *database.StoreError

	switch {
	case errors.As(err, &notFound):
		return ErrorKindNotFound
	case errors.As(err, &invalidDate):
		return ErrorKindInvalidDate
	case errors.As(err, &cyclic):
		return ErrorKindCyclicAction
	case errors.As(err, &storeError):
		return ErrorKindStore
	}

	return ErrorKindUnknown
}

// ErrorDocument replaces the tree when a resolution fails
type ErrorDocument struct {
	Exception string `json:"exception"`
}
