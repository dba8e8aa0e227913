package jenkins

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobdetails/src/logger"
	"jobdetails/src/provider"
)

func TestJenkinsProvider_Name(t *testing.T) {
	p := NewProvider(time.Second, nil)
	if p.Name() != "jenkins" {
		t.Errorf("Name() = %v, want jenkins", p.Name())
	}

	// Verify the provider satisfies the interface
	var _ provider.Provider = p
}

func TestJenkinsProvider_FetchBuild(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/job/deploy/lastBuild/api/json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"building": true,
			"result": null,
			"duration": 0,
			"builtOn": "\u001b[32mnode-7\u001b[0m",
			"actions": [{"causes": [{"upstreamProject": "build-all"}]}]
		}`))
	}))
	defer server.Close()

	var logs bytes.Buffer
	p := NewProvider(5*time.Second, logger.NewConsoleLogger(&logs))

	ref := provider.JobRef{ServerURL: server.URL, JobName: "deploy", BuildID: "lastBuild"}
	build, err := p.FetchBuild(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchBuild() error = %v", err)
	}

	if build.Status != "building" {
		t.Errorf("Status = %v, want building", build.Status)
	}
	if build.Node != "node-7" {
		t.Errorf("Node = %q, want node-7", build.Node)
	}
	if build.StartedBy != "build-all" {
		t.Errorf("StartedBy = %v, want build-all", build.StartedBy)
	}
	if build.DurationMillis != "0" {
		t.Errorf("DurationMillis = %v, want 0", build.DurationMillis)
	}

	if !strings.Contains(logs.String(), "[DEBUG] GET "+server.URL+"/job/deploy/lastBuild/api/json") {
		t.Errorf("expected request URL in debug log, got %q", logs.String())
	}
}

func TestJenkinsProvider_FetchBuild_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	p := NewProvider(5*time.Second, nil)
	_, err := p.FetchBuild(context.Background(), provider.JobRef{ServerURL: server.URL, JobName: "typo", BuildID: "1"})

	if !errors.Is(err, provider.ErrNetwork) {
		t.Fatalf("FetchBuild() error = %v, want ErrNetwork", err)
	}
}
