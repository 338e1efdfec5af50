package focus

import "errors"

var (
	errDanglingPath = errors.New("focus path does not resolve in the tree")
	errNotFocusable = errors.New("target does not accept focus")
)
