package jenkins

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"jobdetails/src/provider"
	"jobdetails/src/sanitize"
)

// StatusBuilding is reported while a build is still running.
const StatusBuilding = "building"

// Record is a decoded build document. Numbers are kept as json.Number.
type Record map[string]any

// Lookup returns the value stored under key as a string, or NA when the key is
// missing or null.
func (r Record) Lookup(key string) string {
	if s, ok := field(r, key); ok {
		return s
	}
	return provider.NA
}

// Node returns the name of the agent the build ran on.
func (r Record) Node() string {
	return r.Lookup("builtOn")
}

// Status returns "building" for a running build and the build result otherwise.
// A missing or non-boolean building flag counts as not building.
func (r Record) Status() string {
	if building, ok := r["building"].(bool); ok && building {
		return StatusBuilding
	}
	return r.Lookup("result")
}

// DurationMillis returns the build duration in milliseconds as text.
func (r Record) DurationMillis() string {
	return sanitize.StripLineBreaks(r.Lookup("duration"))
}

// StartedBy describes what triggered the build.
//
// The first action with a non-empty causes list decides: its first cause yields
// the user name (spaces replaced by underscores), the upstream project or the
// short description, in that order. Anything else is NA.
func (r Record) StartedBy() string {
	actions, _ := r["actions"].([]any)
	for _, a := range actions {
		action, ok := a.(map[string]any)
		if !ok {
			continue
		}

		causes, _ := action["causes"].([]any)
		if len(causes) == 0 {
			continue
		}

		cause, ok := causes[0].(map[string]any)
		if !ok {
			return provider.NA
		}

		if user, ok := field(cause, "userName"); ok {
			return strings.ReplaceAll(user, " ", "_")
		}
		if upstream, ok := field(cause, "upstreamProject"); ok {
			return upstream
		}
		if desc, ok := field(cause, "shortDescription"); ok {
			return desc
		}
		return provider.NA
	}

	return provider.NA
}

// Summary extracts every report field from the record.
func (r Record) Summary() *provider.Build {
	return &provider.Build{
		Node:           sanitize.Value(r.Node()),
		Status:         sanitize.Value(r.Status()),
		StartedBy:      sanitize.Value(r.StartedBy()),
		DurationMillis: r.DurationMillis(),
	}
}

func field(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}

	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t), true
		}
		return string(data), true
	}
}
