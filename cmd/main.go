package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func (v VersionTags) String() string {
	return fmt.Sprintf("%s (commit %s, built %s on %s)", v.Version, v.GitCommit, v.BuildDate, v.BuildOS)
}

var logFormat string

// configureLogging sets the formatter used for evaluation traces.
func configureLogging(log *logrus.Logger, format string) error {
	switch format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	return nil
}

func newApp(info VersionTags) *cli.App {
	app := cli.NewApp()
	app.Name = "tokparse"
	app.Usage = "parse token streams with declarative grammars"
	app.Version = info.String()
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "log-format",
			Value:       "text",
			Usage:       "trace output format, text or json",
			Destination: &logFormat,
		},
	}
	app.Before = func(*cli.Context) error {
		return configureLogging(logrus.StandardLogger(), logFormat)
	}
	app.Commands = []cli.Command{parseCommand, checkCommand}
	return app
}

func Main(info VersionTags) {
	if err := newApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
