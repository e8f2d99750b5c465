package report

import "errors"

var ErrReport = errors.New("failed to write build report")
