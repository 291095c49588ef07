package cli

import (
	"fmt"
	"io"
	"os"

	"session-analytics/internal/shared/configs"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Analyze *AnalyzeCommand
	Serve   *ServeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "sessionize"
	parser.LongDescription = "Sessionize load balancer access logs and report per-session engagement statistics."

	cmds := &commands{
		Analyze: &AnalyzeCommand{globals: &globals, version: version},
		Serve:   &ServeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("analyze", "Analyze an access log file", "Sessionize an access log file and print the session report.", cmds.Analyze)
	parser.AddCommand("serve", "Run the HTTP analysis service", "Run the HTTP service accepting access log uploads on POST /analyses.", cmds.Serve)

	return parser, &globals, cmds
}

// Run is the main entry point for the sessionize CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// --version is valid without a subcommand
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("sessionize %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}

// loadConfig reads the --config file or falls back to built-in defaults, then applies --log-level.
func loadConfig(globals *GlobalFlags) (*configs.Config, error) {
	cfg := configs.DefaultConfig()
	if globals != nil && globals.Config != "" {
		loaded, err := configs.LoadConfig(globals.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if globals != nil && globals.LogLevel != "" {
		cfg.Log.Level = globals.LogLevel
	}
	return cfg, nil
}

func writerOr(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
