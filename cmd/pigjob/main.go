package main

import (
	"fmt"
	"os"

	"github.com/lovethedrake/pigjob/pkg/version"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pigjob"
	app.HelpName = "pigjob"
	app.Usage = "build the command line of a Pig job from a Pigfile"
	app.Version = version.Version()
	if version.Commit() != "" {
		app.Version = fmt.Sprintf("%s+%s", app.Version, version.Commit())
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   flagsFile,
			Usage:  "specify the location of the Pigfile",
			Value:  "Pigfile.yaml",
			EnvVar: envFile,
		},
		cli.BoolFlag{
			Name:   flagsDebug,
			Usage:  "log debug info",
			EnvVar: envDebug,
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool(flagDebug) {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "print the job's command line",
			UsageText: "pigjob render [options]",
			Action:    render,
		},
		{
			Name:      "argv",
			Usage:     "print the job's command line one argument per line",
			UsageText: "pigjob argv [options]",
			Action:    argv,
		},
		{
			Name:      "deps",
			Aliases:   []string{"dependencies"},
			Usage:     "list the files and inline content the job depends on",
			UsageText: "pigjob deps [options]",
			Action:    deps,
		},
		{
			Name:      "show",
			Usage:     "print the job as a chain of setter calls",
			UsageText: "pigjob show [options]",
			Action:    show,
		},
	}
	return app
}
