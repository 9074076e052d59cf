package pig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CmdArgs returns the command line arguments the job executes with. When the
// command line was set explicitly with CommandArguments, that string is
// returned unchanged. Otherwise it is assembled from, in order: properties,
// the property file, parameter files, parameters and the script file.
func (j *Job) CmdArgs() string {
	if args, ok := j.Job.CommandArguments(); ok {
		return args
	}

	var segments []string
	j.CommandOptions(PropertyFlag).Each(func(name, value string) {
		segments = append(segments, fmt.Sprintf("%s%s=%s", PropertyFlag, name, value))
	})
	if j.propertyFile != nil {
		segments = append(segments, fmt.Sprintf("-P %s", filepath.Base(*j.propertyFile)))
	}
	for _, path := range j.parameterFiles {
		segments = append(segments, fmt.Sprintf("-param_file %s", filepath.Base(path)))
	}
	j.Parameters().Each(func(name, value string) {
		segments = append(
			segments,
			fmt.Sprintf("-p '%s=%s'", name, strings.Replace(value, "'", "''", -1)),
		)
	})
	segments = append(segments, fmt.Sprintf("-f %s", j.scriptFilename()))

	args := strings.TrimSpace(strings.Join(segments, " "))
	log.WithFields(log.Fields{
		"job":  j.Name(),
		"args": args,
	}).Debug("rendered pig command line")
	return args
}

// Argv splits CmdArgs into individual arguments using shell quoting rules.
func (j *Job) Argv() ([]string, error) {
	args := j.CmdArgs()
	argv, err := shellwords.Parse(args)
	if err != nil {
		return nil, errors.Wrapf(err, "error splitting command line %q", args)
	}
	return argv, nil
}

func (j *Job) scriptFilename() string {
	if j.script != nil && isFile(*j.script) {
		return filepath.Base(*j.script)
	}
	return DefaultScriptName
}
