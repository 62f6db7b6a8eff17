// Package status holds the OPEN/FINISHED lifecycle shared by projects and
// activities, and its single-character storage code.
package status

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/projman/internal/domain/apperr"
)

// Status is the lifecycle state of a project or activity.
type Status string

const (
	Open     Status = "OPEN"
	Finished Status = "FINISHED"
)

const (
	codeOpen     = "O"
	codeFinished = "F"
)

// ErrInvalidStatus is returned when boundary input names no known status.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidStatusCode is returned when a stored code maps to no status.
var ErrInvalidStatusCode = apperr.New(apperr.KindInvalidStatusCode, "invalid status code")

// All lists every status in declaration order.
func All() []Status {
	return []Status{Open, Finished}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == Open || s == Finished
}

func (s Status) String() string {
	return string(s)
}

// Code returns the storage code, or "" for an unknown status.
func (s Status) Code() string {
	switch s {
	case Open:
		return codeOpen
	case Finished:
		return codeFinished
	default:
		return ""
	}
}

// FromCode decodes a storage code.
func FromCode(code string) (Status, error) {
	switch code {
	case codeOpen:
		return Open, nil
	case codeFinished:
		return Finished, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusCode, code)
	}
}

// Parse reads a status name as supplied by a caller.
func Parse(name string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, name)
	}
	return s, nil
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	code := s.Code()
	if code == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return code, nil
}

// Scan implements sql.Scanner.
func (s *Status) Scan(src any) error {
	var code string
	switch v := src.(type) {
	case string:
		code = v
	case []byte:
		code = string(v)
	case nil:
		return fmt.Errorf("%w: null", ErrInvalidStatusCode)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidStatusCode, src)
	}
	decoded, err := FromCode(strings.TrimSpace(code))
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
