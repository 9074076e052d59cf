package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func deps(c *cli.Context) error {
	job, err := loadJob(c)
	if err != nil {
		return err
	}
	for _, dep := range job.Dependencies() {
		fmt.Fprintln(c.App.Writer, dep)
	}
	return nil
}

func show(c *cli.Context) error {
	job, err := loadJob(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, job.Repr())
	return nil
}
