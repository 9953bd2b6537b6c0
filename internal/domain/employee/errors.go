package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSlipNotFound     = errors.New("salary slip not found")
)
