package jenkins

import (
	"testing"
)

func mustDecode(t *testing.T, data string) Record {
	t.Helper()
	rec, err := DecodeRecord([]byte(data))
	if err != nil {
		t.Fatalf("DecodeRecord(%s) error = %v", data, err)
	}
	return rec
}

func TestRecord_Lookup(t *testing.T) {
	rec := mustDecode(t, `{
		"builtOn": "node-7",
		"result": null,
		"duration": 125000,
		"number": 42,
		"keepLog": false,
		"executor": {"idle": true},
		"empty": ""
	}`)

	tests := []struct {
		key  string
		want string
	}{
		{key: "builtOn", want: "node-7"},
		{key: "result", want: "NA"},
		{key: "duration", want: "125000"},
		{key: "number", want: "42"},
		{key: "keepLog", want: "false"},
		{key: "executor", want: `{"idle":true}`},
		{key: "empty", want: ""},
		{key: "missing", want: "NA"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := rec.Lookup(tt.key); got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestRecord_Status(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "finished success", data: `{"building": false, "result": "SUCCESS"}`, want: "SUCCESS"},
		{name: "finished failure", data: `{"building": false, "result": "FAILURE"}`, want: "FAILURE"},
		{name: "building ignores result", data: `{"building": true, "result": "SUCCESS"}`, want: "building"},
		{name: "building with null result", data: `{"building": true, "result": null}`, want: "building"},
		{name: "no result", data: `{"building": false}`, want: "NA"},
		{name: "no building flag", data: `{"result": "ABORTED"}`, want: "ABORTED"},
		{name: "non-boolean building flag", data: `{"building": "yes", "result": "UNSTABLE"}`, want: "UNSTABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustDecode(t, tt.data).Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_StartedBy(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "user name with spaces",
			data: `{"actions": [{"causes": [{"userName": "Jane Doe", "shortDescription": "Started by user Jane Doe"}]}]}`,
			want: "Jane_Doe",
		},
		{
			name: "upstream project",
			data: `{"actions": [{"causes": [{"upstreamProject": "build-all", "shortDescription": "Started by upstream project"}]}]}`,
			want: "build-all",
		},
		{
			name: "short description",
			data: `{"actions": [{"causes": [{"shortDescription": "Started by timer"}]}]}`,
			want: "Started by timer",
		},
		{
			name: "cause without known keys",
			data: `{"actions": [{"causes": [{"_class": "hudson.model.Cause"}]}]}`,
			want: "NA",
		},
		{
			name: "only the first cause is inspected",
			data: `{"actions": [{"causes": [{"_class": "x"}, {"userName": "Jane Doe"}]}]}`,
			want: "NA",
		},
		{
			name: "first action with causes wins",
			data: `{"actions": [{}, {"_class": "ParametersAction"}, {"causes": [{"userName": "first"}]}, {"causes": [{"userName": "second"}]}]}`,
			want: "first",
		},
		{
			name: "empty causes list is skipped",
			data: `{"actions": [{"causes": []}, {"causes": [{"upstreamProject": "nightly"}]}]}`,
			want: "nightly",
		},
		{
			name: "no action carries causes",
			data: `{"actions": [{}, {"parameters": []}]}`,
			want: "NA",
		},
		{
			name: "no actions key",
			data: `{"result": "SUCCESS"}`,
			want: "NA",
		},
		{
			name: "actions is not a list",
			data: `{"actions": "oops"}`,
			want: "NA",
		},
		{
			name: "null actions entries",
			data: `{"actions": [null, {"causes": [{"userName": "ops"}]}]}`,
			want: "ops",
		},
		{
			name: "null user name falls through",
			data: `{"actions": [{"causes": [{"userName": null, "shortDescription": "Started by SCM change"}]}]}`,
			want: "Started by SCM change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustDecode(t, tt.data).StartedBy(); got != tt.want {
				t.Errorf("StartedBy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_DurationMillis(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "number", data: `{"duration": 125000}`, want: "125000"},
		{name: "string with CRLF", data: `{"duration": "125000\r\n"}`, want: "125000"},
		{name: "missing", data: `{}`, want: "NA"},
		{name: "large value stays exact", data: `{"duration": 9007199254740993}`, want: "9007199254740993"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustDecode(t, tt.data).DurationMillis(); got != tt.want {
				t.Errorf("DurationMillis() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_Summary(t *testing.T) {
	rec := mustDecode(t, `{
		"building": false,
		"result": "SUCCESS",
		"duration": 125000,
		"builtOn": "node-7",
		"actions": [{"causes": [{"userName": "Jane Doe"}]}]
	}`)

	got := rec.Summary()

	if got.Node != "node-7" {
		t.Errorf("Node = %q, want node-7", got.Node)
	}
	if got.Status != "SUCCESS" {
		t.Errorf("Status = %q, want SUCCESS", got.Status)
	}
	if got.StartedBy != "Jane_Doe" {
		t.Errorf("StartedBy = %q, want Jane_Doe", got.StartedBy)
	}
	if got.DurationMillis != "125000" {
		t.Errorf("DurationMillis = %q, want 125000", got.DurationMillis)
	}
}

func TestRecord_Summary_Empty(t *testing.T) {
	got := mustDecode(t, `{}`).Summary()

	for name, v := range map[string]string{
		"Node":           got.Node,
		"Status":         got.Status,
		"StartedBy":      got.StartedBy,
		"DurationMillis": got.DurationMillis,
	} {
		if v != "NA" {
			t.Errorf("%s = %q, want NA", name, v)
		}
	}
}
