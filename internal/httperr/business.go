package httperr

import "errors"

// BusinessError is an expected, client-visible failure identified by a
// stable snake_case code (invalid_cursor, too_many_requests). Handlers
// translate the code into a status and a localized message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
