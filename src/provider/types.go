package provider

// NA is the placeholder for any field the CI server did not report.
const NA = "NA"

// JobRef identifies a single build of a job on a CI server
type JobRef struct {
	ServerURL string // Base URL, e.g. http://jenkins.server:8080
	JobName   string // Job name as known to the server
	BuildID   string // Build number or alias such as lastBuild
}

// Build holds the fields extracted from a build record.
// Every field is either the server's value or NA.
type Build struct {
	Node           string
	Status         string
	StartedBy      string
	DurationMillis string
}
