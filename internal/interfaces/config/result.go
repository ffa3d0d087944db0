// Package config
package config

import "fmt"

type validType int

const (
	PASS validType = iota
	FAIL
)

type ValidResult struct {
	validType validType
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{validType: PASS, err: nil, originErr: nil}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err, originErr: originErr}
}

// Wrap prefixes the failure with the name of the section that produced it
func (r *ValidResult) Wrap(section string) *ValidResult {
	if !r.IsFail() {
		return r
	}
	return &ValidResult{validType: FAIL, err: fmt.Errorf("%s: %w", section, r.err), originErr: r.originErr}
}

func (r *ValidResult) IsFail() bool {
	return r.validType == FAIL
}

func (r *ValidResult) Error() error {
	if r.originErr != nil && r.err != nil {
		return fmt.Errorf("%w, %v", r.err, r.originErr)
	}
	return r.err
}

func (r *ValidResult) OriginErr() error { return r.originErr }
