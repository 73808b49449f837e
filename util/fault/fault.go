// Package fault carries the typed failures the services report. Every check
// in the service layer fails with one of these codes plus a message naming
// the offending field or reference.
package fault

import "errors"

type ErrCode string

const (
	ErrDuplicateKey      ErrCode = "DUPLICATE_KEY"
	ErrInvalidDateFormat ErrCode = "INVALID_DATE_FORMAT"
	ErrReferenceNotFound ErrCode = "REFERENCE_NOT_FOUND"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrHasDependents     ErrCode = "HAS_DEPENDENTS"
	ErrValidationFailed  ErrCode = "VALIDATION_FAILED"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func New(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code, "" when err carries none.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
