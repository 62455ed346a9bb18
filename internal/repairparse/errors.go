package repairparse

import "fmt"

// ParseError is raised by unrecoverable structural failures. Path points at
// the closest structural anchor ("$", "$[i]", "$.key").
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("repairparse: %s (at %s)", e.Message, e.Path)
}

func errAt(path, format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Path: path}
}
