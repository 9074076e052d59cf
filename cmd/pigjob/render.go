package main

import (
	"fmt"

	"github.com/lovethedrake/pigjob/pkg/pig"
	"github.com/lovethedrake/pigjob/pkg/pigfile"
	"github.com/urfave/cli"
)

func loadJob(c *cli.Context) (*pig.Job, error) {
	pf, err := pigfile.NewPigfileFromFile(c.GlobalString(flagFile))
	if err != nil {
		return nil, err
	}
	return pf.Job()
}

func render(c *cli.Context) error {
	job, err := loadJob(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, job.CmdArgs())
	return nil
}

func argv(c *cli.Context) error {
	job, err := loadJob(c)
	if err != nil {
		return err
	}
	args, err := job.Argv()
	if err != nil {
		return err
	}
	for _, arg := range args {
		fmt.Fprintln(c.App.Writer, arg)
	}
	return nil
}
