package main

import (
	"errors"
	"fmt"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// UsageError reports bad command-line arguments. No file I/O has happened
// when one is returned.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// IOError reports an input that cannot be opened or an output that cannot
// be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports an extract whose header lacks a required column or
// that is not valid delimited text.
type ParseError struct {
	Table  string
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: missing %s column", e.Table, e.Column)
	}
	return fmt.Sprintf("%s: %v", e.Table, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DataError reports a value that cannot be coerced to its column's type.
// Row is the 1-based line number in the extract, header included.
type DataError struct {
	Table  string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s row %d: invalid %s %q: %v", e.Table, e.Row, e.Column, e.Value, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

func exitCode(err error) int {
	var usage *UsageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitFailure
}
