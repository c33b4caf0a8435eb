package spec

import "errors"

// ErrSpecInvalid is the boundary error class: every malformed YAML spec,
// CSV table or witness declaration wraps it. Match with errors.Is; the
// wrapped multierror lists each defect.
var ErrSpecInvalid = errors.New("spec: invalid specification")
