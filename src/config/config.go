// Package config resolves invocation parameters and runtime settings for jobdetails.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"jobdetails/src/provider"
)

// DefaultBuildID selects the most recent build of a job.
const DefaultBuildID = "lastBuild"

// EnvPrefix is prepended to every environment variable read by LoadSettings.
const EnvPrefix = "JOBDETAILS"

// Setting keys, shared by flags and environment variables.
const (
	KeyTimeout   = "timeout"
	KeyOutputDir = "output-dir"
	KeyFormat    = "format"
	KeyVerbose   = "verbose"
)

// Output formats for the console report.
const (
	FormatText   = "text"
	FormatPretty = "pretty"
)

// DefaultTimeout bounds the single API request.
const DefaultTimeout = 30 * time.Second

// ErrArgCount reports a wrong number of positional arguments.
var ErrArgCount = fmt.Errorf("%w: wrong number of arguments", provider.ErrUsage)

// buildAliases are the permalinks Jenkins resolves to a concrete build.
var buildAliases = map[string]bool{
	"lastBuild":             true,
	"lastCompletedBuild":    true,
	"lastFailedBuild":       true,
	"lastStableBuild":       true,
	"lastSuccessfulBuild":   true,
	"lastUnstableBuild":     true,
	"lastUnsuccessfulBuild": true,
}

// Params holds the positional inputs of one invocation.
type Params struct {
	ServerURL string
	JobName   string
	BuildID   string
}

// ResolveArgs builds Params from the positional arguments that follow the program name.
// Two arguments select the most recent build; a third is used verbatim as the build ID.
func ResolveArgs(args []string) (Params, error) {
	switch len(args) {
	case 2:
		return Params{ServerURL: args[0], JobName: args[1], BuildID: DefaultBuildID}, nil
	case 3:
		return Params{ServerURL: args[0], JobName: args[1], BuildID: args[2]}, nil
	default:
		return Params{}, fmt.Errorf("%w: expected 2 or 3, got %d", ErrArgCount, len(args))
	}
}

// IsAlias reports whether the build ID is a named permalink rather than a build number.
func (p Params) IsAlias() bool {
	return buildAliases[p.BuildID]
}

// Ref converts the parameters into a provider job reference.
func (p Params) Ref() provider.JobRef {
	return provider.JobRef{
		ServerURL: p.ServerURL,
		JobName:   p.JobName,
		BuildID:   p.BuildID,
	}
}

// Settings holds runtime options that do not change what is fetched.
type Settings struct {
	// Timeout applies to the whole HTTP request.
	Timeout time.Duration
	// OutputDir is where the CSV file is written.
	OutputDir string
	// Format selects the console rendering: text or pretty.
	Format string
	// Verbose enables debug logging on stderr.
	Verbose bool
}

// NewViper returns a viper instance with defaults and JOBDETAILS_* environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyVerbose, false)
	return v
}

// LoadSettings reads and validates settings from v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Timeout:   v.GetDuration(KeyTimeout),
		OutputDir: v.GetString(KeyOutputDir),
		Format:    strings.ToLower(v.GetString(KeyFormat)),
		Verbose:   v.GetBool(KeyVerbose),
	}

	if s.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %q", provider.ErrUsage, v.GetString(KeyTimeout))
	}

	if s.Format != FormatText && s.Format != FormatPretty {
		return nil, fmt.Errorf("%w: unknown format %q (want %s or %s)", provider.ErrUsage, s.Format, FormatText, FormatPretty)
	}

	if s.OutputDir == "" {
		s.OutputDir = "."
	}

	return s, nil
}
