package cli

import "io"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config   string `long:"config" description:"Path to config file (built-in defaults when empty)"`
	LogLevel string `long:"log-level" description:"Override log level"`
	Version  bool   `long:"version" description:"Show version and exit"`
}

// AnalyzeCommand analyzes one access log file and prints the session report.
type AnalyzeCommand struct {
	File          string  `long:"file" short:"f" description:"Access log to analyze, plain or gzipped" required:"true"`
	SessionPeriod float64 `long:"session-period" description:"Inactivity gap in seconds that closes a session (config value when 0)"`
	Workers       int     `long:"workers" description:"Session builder workers, below 2 builds sequentially (config value when -1)" default:"-1"`
	ExcludeBots   bool    `long:"exclude-bots" description:"Drop records whose user agent is a known bot"`
	GeoIPDatabase string  `long:"geoip-db" description:"MaxMind country database used to annotate engaged clients"`
	Format        string  `long:"format" description:"Report format" choice:"text" choice:"json" choice:"yaml" default:"text"`

	globals *GlobalFlags
	version string
	stdout  io.Writer // nil means os.Stdout
	stderr  io.Writer // nil means os.Stderr
}

// ServeCommand runs the HTTP analysis service.
type ServeCommand struct {
	Port int `long:"port" description:"Override server port"`

	globals *GlobalFlags
	version string
}
