// Command grpc-course runs the CourseService gRPC server or calls it.
//
//	grpc-course serve [--addr :50051]
//	grpc-course get [--addr localhost:50051] 233196
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/coursekit/course-api/internal/config"
	"github.com/coursekit/course-api/internal/demo/grpccourse"
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
		Name:  "grpc-course",
		Usage: "gRPC CourseService demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "server address",
				EnvVars: []string{"COURSE_DEMO_GRPC_ADDR"},
				Value:   grpccourse.DefaultAddr,
			},
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the server",
				Action: serve,
			},
			{
				Name:      "get",
				Usage:     "call GetCourse and print the response",
				ArgsUsage: "COURSE_ID",
				Action:    getCourse,
			},
		},
	}
}

func serve(c *cli.Context) error {
	log, err := logger.Setup(config.ServerConfig{LogLevel: c.String("log-level")})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", c.String("addr"))
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.String("addr"), err)
	}

	srv := grpccourse.NewServer(log)
	stop := context.AfterFunc(c.Context, srv.GracefulStop)
	defer stop()

	log.Info("grpc server started", "addr", ln.Addr().String())
	return srv.Serve(ln)
}

func getCourse(c *cli.Context) error {
	courseID := "233196"
	if c.NArg() > 0 {
		courseID = c.Args().First()
	}
	addr := c.String("addr")
	if host, port, err := net.SplitHostPort(addr); err == nil && host == "" {
		addr = net.JoinHostPort("localhost", port)
	}

	conn, err := grpccourse.Dial(addr)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()

	resp, err := grpccourse.NewClient(conn).GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "course_id: %q\ntitle: %q\ndescription: %q\n",
		resp.CourseID(), resp.Title(), resp.Description())
	return err
}
