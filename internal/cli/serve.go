package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"session-analytics/internal/app"

	goflags "github.com/jessevdk/go-flags"
)

// ServerOptions are the flags of the standalone server binary.
type ServerOptions struct {
	Config   string `long:"config" description:"Path to config file" default:"./configs/configs.yml"`
	LogLevel string `long:"log-level" description:"Override log level"`
	Port     int    `long:"port" description:"Override server port"`
}

// Execute implements the go-flags Commander interface for ServeCommand.
func (c *ServeCommand) Execute(args []string) error {
	return serve(c.globals, c.Port)
}

// RunServer parses the standalone server flags from args (os.Args when nil) and serves until
// SIGINT or SIGTERM.
func RunServer(args []string) error {
	opts, err := parseServerOptions(args)
	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}
	return serve(&GlobalFlags{Config: opts.Config, LogLevel: opts.LogLevel}, opts.Port)
}

func parseServerOptions(args []string) (*ServerOptions, error) {
	opts := &ServerOptions{}
	parser := goflags.NewParser(opts, goflags.Default)
	parser.Name = "server"

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func serve(globals *GlobalFlags, port int) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
