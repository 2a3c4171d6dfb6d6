package exporter

import "fmt"

// DataSourceError reports a failure to read bands or entries. Nothing has
// been written when it is returned.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ReportSinkError reports a failed clear or write. The report may be left
// partially written and the run must be repeated.
type ReportSinkError struct {
	Err error
}

func (e *ReportSinkError) Error() string {
	return fmt.Sprintf("report sink: %v", e.Err)
}

func (e *ReportSinkError) Unwrap() error {
	return e.Err
}
