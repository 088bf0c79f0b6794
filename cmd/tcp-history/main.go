// Command tcp-history runs the TCP message history server or sends it a
// message.
//
//	tcp-history serve [--addr localhost:12345]
//	tcp-history send [--addr localhost:12345] "Hello"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/demo/tcphistory"
	"github.com/coursekit/course-api/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "tcp-history",
		Usage: "TCP server answering every message with the whole message history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server address",
				EnvVars: []string{"COURSE_DEMO_TCP_ADDR"},
				Value:   tcphistory.DefaultAddr,
			},
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the server",
				Action: func(c *cli.Context) error {
					log, err := logger.Setup(config.ServerConfig{LogLevel: c.String("log-level")})
					if err != nil {
						return err
					}
					return tcphistory.NewServer(log).ListenAndServe(c.Context, c.String("addr"))
				},
			},
			{
				Name:      "send",
				Usage:     "send one message and print the history",
				ArgsUsage: "MESSAGE",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("a message is required", 2)
					}
					ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
					defer cancel()

					history, err := tcphistory.Send(ctx, c.String("addr"), strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, history)
					return err
				},
			},
		},
	}
}
