package audit

import "errors"

var ErrInvalidUserID = errors.New("userId must be a positive number")
