package report

import "errors"

var (
	ErrInvalidFormat = errors.New("format must be json, csv, excel or xlsx")
)
