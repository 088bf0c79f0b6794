// Command ws-echo runs the WebSocket echo server or talks to it.
//
//	ws-echo serve [--addr localhost:8765]
//	ws-echo send [--addr localhost:8765] "Hola-hola"
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
	"github.com/coursekit/course-api/internal/demo/wsecho"
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
		Name:  "ws-echo",
		Usage: "WebSocket server answering each message with numbered echoes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server address",
				EnvVars: []string{"COURSE_DEMO_WS_ADDR"},
				Value:   wsecho.DefaultAddr,
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
					log.Info("websocket server started", "url", "ws://"+c.String("addr"))
					return wsecho.ListenAndServe(c.Context, c.String("addr"), log)
				},
			},
			{
				Name:      "send",
				Usage:     "send one message and print the echoes",
				ArgsUsage: "MESSAGE",
				Action: func(c *cli.Context) error {
					message := "Hola-hola"
					if c.NArg() > 0 {
						message = strings.Join(c.Args().Slice(), " ")
					}
					ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
					defer cancel()

					client, err := wsecho.Dial(ctx, "ws://"+c.String("addr"))
					if err != nil {
						return err
					}
					defer func() { _ = client.Close() }()

					fmt.Fprintln(c.App.Writer, "Sending:", message)
					replies, err := client.Send(ctx, message)
					for _, reply := range replies {
						fmt.Fprintln(c.App.Writer, reply)
					}
					return err
				},
			},
		},
	}
}
