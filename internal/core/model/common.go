package model

// Output formats
const (
	OutputPNG     = "png"
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
	OutputBar     = "bar"
)

// Category roles
const (
	CategoryUnknown = "Unknown"
	CategoryOther   = "Other"
)

// SampleExt is the file extension of a captured sample record.
const SampleExt = ".txt"

// SampleTimeLayout is the time layout encoded in sample record names, e.g. 20250419_101500.txt.
const SampleTimeLayout = "20060102_150405"

// SampleDateLayout is the date prefix shared by all records of one day.
const SampleDateLayout = "20060102"

// FileEvent describes a change in the sample directory.
type FileEvent struct {
	Path      string
	Operation string
}
