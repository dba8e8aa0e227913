// Package main provides the jobdetails CLI.
// It fetches one Jenkins build, prints a short report and saves it as CSV.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"jobdetails/src/config"
	"jobdetails/src/jenkins"
	"jobdetails/src/logger"
	"jobdetails/src/provider"
	"jobdetails/src/report"
)

// app carries the process-level dependencies of one invocation.
type app struct {
	stdout      io.Writer
	stderr      io.Writer
	fs          afero.Fs
	newProvider func(settings *config.Settings, log logger.Logger) provider.Provider
}

func newApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		newProvider: func(settings *config.Settings, log logger.Logger) provider.Provider {
			return jenkins.NewProvider(settings.Timeout, log)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "jobdetails <serverURL> <jobName> [buildId]",
		Short: "Show the status of a Jenkins build and save it as CSV",
		Long: `Fetches one build of a Jenkins job from <serverURL>/job/<jobName>/<buildId>/api/json,
prints the node, status, initiator and duration, and writes the same fields to
<jobName>_<buildId>.csv.

buildId defaults to lastBuild. It may be a build number or one of
lastCompletedBuild, lastFailedBuild, lastStableBuild, lastSuccessfulBuild,
lastUnstableBuild, lastUnsuccessfulBuild.

Exit codes: 0 success, 1 usage error, 2 HTTP/network failure,
3 unparsable response, 4 report could not be written.

Example:
  jobdetails http://jenkins.server:8080 calc_ci_cd
  jobdetails http://jenkins.server:8080 calc_ci_cd 1102
  jobdetails http://jenkins.server:8080 calc_ci_cd lastSuccessfulBuild`,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := config.ResolveArgs(args)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.ResolveArgs(args)
			if err != nil {
				return err
			}

			settings, err := config.LoadSettings(v)
			if err != nil {
				return err
			}

			return a.run(cmd.Context(), params, settings)
		},
	}

	flags := cmd.Flags()
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "timeout for the API request (env JOBDETAILS_TIMEOUT)")
	flags.String(config.KeyOutputDir, ".", "directory the CSV file is written to (env JOBDETAILS_OUTPUT_DIR)")
	flags.String(config.KeyFormat, config.FormatText, "console format: text or pretty (env JOBDETAILS_FORMAT)")
	flags.BoolP(config.KeyVerbose, "v", false, "log request details to stderr (env JOBDETAILS_VERBOSE)")
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", provider.ErrUsage, err)
	})
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd
}

// run fetches the build, prints the report and writes the CSV file.
func (a *app) run(ctx context.Context, params config.Params, settings *config.Settings) error {
	var log logger.Logger = logger.NewSilentLogger()
	if settings.Verbose {
		log = logger.NewConsoleLogger(a.stderr)
	}

	if params.IsAlias() {
		log.Debug("build %s is an alias, the server resolves it", params.BuildID)
	}

	p := a.newProvider(settings, log)
	ref := params.Ref()

	log.Info("fetching %s build %s from %s (timeout %s)", ref.JobName, ref.BuildID, p.Name(), settings.Timeout)
	build, err := p.FetchBuild(ctx, ref)
	if err != nil {
		return provider.WrapError(err, ref.JobName)
	}

	rep := report.New(ref, build)

	if settings.Format == config.FormatPretty {
		_, err = fmt.Fprintln(a.stdout, rep.RenderPretty(report.StylesFor(a.stdout)))
	} else {
		err = rep.WriteConsole(a.stdout)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to print report: %w", provider.ErrOutput, err)
	}

	path, err := rep.WriteCSV(a.fs, settings.OutputDir)
	if err != nil {
		return err
	}
	log.Debug("wrote %s", path)

	if err := report.WriteConfirmation(a.stdout, path); err != nil {
		return fmt.Errorf("%w: failed to print confirmation: %w", provider.ErrOutput, err)
	}
	return nil
}

// execute runs the root command and maps its error to an exit code.
func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		printError(a.stderr, err)
	}
	return provider.ExitCode(err)
}

// printError reports err on w. A wrong argument count prints nothing.
func printError(w io.Writer, err error) {
	if errors.Is(err, config.ErrArgCount) {
		return
	}

	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("#EA4335"))

	var userErr *provider.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(w, style.Render(userErr.Message))
		if userErr.Hint != "" {
			fmt.Fprintln(w, "      ("+userErr.Hint+")")
		}
		if userErr.Err != nil {
			fmt.Fprintf(w, "Details: %v\n", userErr.Err)
		}
		return
	}

	fmt.Fprintln(w, style.Render("Error: "+err.Error()))
}

func main() {
	os.Exit(execute(context.Background(), newApp(), os.Args[1:]))
}
