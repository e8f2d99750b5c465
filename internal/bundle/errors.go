package bundle

import "errors"

var ErrBundle = errors.New("bundler failed")
