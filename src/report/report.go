// Package report turns an extracted build into the console and CSV report.
package report

import (
	"fmt"
	"io"

	"jobdetails/src/duration"
	"jobdetails/src/provider"
)

// Field is one labeled line of the report.
type Field struct {
	Label string
	// Sep goes between label and value on the console only.
	Sep   string
	Value string
}

// Line renders the field as it appears on the console.
func (f Field) Line() string {
	return f.Label + f.Sep + f.Value
}

// Report is the six-field summary of one build.
type Report struct {
	JobName string
	BuildID string
	Fields  []Field
}

// New builds the report for ref from the extracted build fields.
// Field order: job name, build number, started by, status, duration, node.
func New(ref provider.JobRef, b *provider.Build) *Report {
	return &Report{
		JobName: ref.JobName,
		BuildID: ref.BuildID,
		Fields: []Field{
			{Label: "Job name:", Sep: " ", Value: ref.JobName},
			{Label: "Build num:", Sep: " ", Value: ref.BuildID},
			{Label: "Started by:", Sep: " ", Value: b.StartedBy},
			{Label: "Status:", Value: b.Status},
			{Label: "Duration:", Value: duration.Format(b.DurationMillis)},
			{Label: "Slave:", Sep: " ", Value: b.Node},
		},
	}
}

// WriteConsole prints one line per field.
func (r *Report) WriteConsole(w io.Writer) error {
	for _, f := range r.Fields {
		if _, err := fmt.Fprintln(w, f.Line()); err != nil {
			return err
		}
	}
	return nil
}

// WriteConfirmation prints the line announcing where the CSV file went.
func WriteConfirmation(w io.Writer, path string) error {
	_, err := fmt.Fprintln(w, "Generated CSV file at your location: "+path)
	return err
}
