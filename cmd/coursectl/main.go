// Command coursectl drives the course API through the client SDK.
//
//	coursectl [--base-url URL] create-exercise --upload-file image.png
//	coursectl login --email a@example.com --password secret --field token.accessToken
//	coursectl me --email a@example.com --password secret
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/coursekit/course-api/internal/client"
	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/platform/logger"
)

const (
	flagBaseURL  = "base-url"
	flagTimeout  = "timeout"
	flagLogLevel = "log-level"
	flagCoverage = "coverage"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "coursectl",
		Usage:     "Command line client for the course API",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagBaseURL,
				Usage:   "API root URL",
				EnvVars: []string{"COURSE_CLIENT_BASE_URL"},
				Value:   "http://localhost:8000",
			},
			&cli.DurationFlag{
				Name:    flagTimeout,
				Usage:   "request timeout",
				EnvVars: []string{"COURSE_CLIENT_TIMEOUT"},
				Value:   client.DefaultTimeout,
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "log level (debug logs every request as curl)",
				Value: "warn",
			},
			&cli.BoolFlag{
				Name:  flagCoverage,
				Usage: "print the endpoints hit when the command finishes",
			},
		},
		Commands: []*cli.Command{
			createExerciseCmd,
			loginCmd,
			meCmd,
		},
	}
}

// session holds what every command needs to talk to the API.
type session struct {
	cfg      client.HTTPConfig
	coverage *client.CoverageTracker
	out      io.Writer
}

func newSession(c *cli.Context) (*session, error) {
	log, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: c.String(flagLogLevel)}, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	var coverage *client.CoverageTracker
	if c.Bool(flagCoverage) {
		coverage = client.NewCoverageTracker("coursectl")
	}

	timeout := c.Duration(flagTimeout)
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}
	cfg := client.NewHTTPConfig(config.ClientConfig{
		BaseURL:        c.String(flagBaseURL),
		TimeoutSeconds: int(timeout / time.Second),
	}, log, coverage)
	cfg.Timeout = timeout

	return &session{cfg: cfg, coverage: coverage, out: c.App.Writer}, nil
}

// finish prints the coverage report when it was requested.
func (s *session) finish() {
	if s.coverage == nil {
		return
	}
	fmt.Fprintln(s.out, "Coverage:")
	for _, hit := range s.coverage.Report() {
		fmt.Fprintf(s.out, "  %s %s %d x%d\n", hit.Method, hit.Route, hit.StatusCode, hit.Count)
	}
}
