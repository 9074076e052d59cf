// Package pig builds Pig script jobs and renders them into the command line
// the job-execution service runs.
package pig

import (
	"os"

	"github.com/lovethedrake/pigjob/pkg/job"
	"github.com/pkg/errors"
)

// DefaultScriptName is the remote filename used for inline scripts and for
// jobs that never set a script.
const DefaultScriptName = "script.pig"

// PropertyFlag is the command option group Pig properties are stored in.
const PropertyFlag = "-D"

const (
	scriptSlot       = "script"
	propertyFileSlot = "property_file"
)

// Job is a Pig job. Setters return the receiver so calls can be chained:
//
//	j := pig.New().
//		JobName("pig example").
//		Script("/Users/jsmith/my_script.pig").
//		Parameter("param_1", "value_1").
//		ParameterFile("/Users/jsmith/my_parameters.params").
//		Property("mapred.foo", "fizz").
//		PropertyFile("/Users/jsmith/my_properties.conf")
//
// A setter given a missing or malformed argument leaves the job untouched and
// records the error, which is available from Err.
type Job struct {
	*job.Job
	script         *string
	parameterFiles []string
	propertyFile   *string
}

// New returns an empty Pig job.
func New() *Job {
	return &Job{
		Job: job.New("PigJob"),
	}
}

// JobName sets the job's name.
func (j *Job) JobName(name string) *Job {
	j.SetName(name) // nolint: errcheck
	return j
}

// Script sets the script to run. script is either the path of a script file
// or the script's code. Only the last script set is used.
func (j *Job) Script(script string) *Job {
	if script == "" {
		j.Fail(errors.Wrap(job.ErrInvalidArgument, "script is required")) // nolint: errcheck
		return j
	}
	dep := job.InlineDependency(DefaultScriptName, script)
	if isFile(script) {
		dep = job.FileDependency(script)
	}
	if err := j.SetDependency(scriptSlot, dep); err != nil {
		return j
	}
	j.script = &script
	j.Record(job.ReprOverwrite, "script", script)
	return j
}

// Parameter sets a parameter used for substitution in the job's script. It is
// rendered as -p 'name=value'.
func (j *Job) Parameter(name string, value interface{}) *Job {
	j.SetParameter(name, value) // nolint: errcheck
	return j
}

// ParameterFile adds one or more parameter files, rendered as
// -param_file <basename>. Files accumulate across calls in call order.
func (j *Job) ParameterFile(paths ...string) *Job {
	if len(paths) == 0 {
		j.Fail(errors.Wrap(job.ErrInvalidArgument, "parameter file is required")) // nolint: errcheck
		return j
	}
	for _, path := range paths {
		if path == "" {
			j.Fail(errors.Wrap(job.ErrInvalidArgument, "parameter file path is empty")) // nolint: errcheck
			return j
		}
	}
	for _, path := range paths {
		if err := j.RegisterDependency(job.FileDependency(path)); err != nil {
			return j
		}
		j.parameterFiles = append(j.parameterFiles, path)
		j.Record(job.ReprAppend, "parameter_file", path)
	}
	return j
}

// Property sets a property for the job, rendered as -Dname=value.
func (j *Job) Property(name string, value interface{}) *Job {
	if err := j.SetCommandOption(PropertyFlag, name, value); err != nil {
		return j
	}
	text, _ := j.CommandOptions(PropertyFlag).Get(name)
	j.Record(job.ReprAppend, "property", name, text)
	return j
}

// PropertyFile sets the file properties are read from, rendered as
// -P <basename>. Only the last property file set is used.
func (j *Job) PropertyFile(path string) *Job {
	if path == "" {
		j.Fail(errors.Wrap(job.ErrInvalidArgument, "property file is required")) // nolint: errcheck
		return j
	}
	if err := j.SetDependency(propertyFileSlot, job.FileDependency(path)); err != nil {
		return j
	}
	j.propertyFile = &path
	j.Record(job.ReprOverwrite, "property_file", path)
	return j
}

// CommandArguments sets the complete command line explicitly. Once set,
// CmdArgs returns it verbatim and ignores everything else configured on the
// job.
func (j *Job) CommandArguments(args string) *Job {
	j.SetCommandArguments(args)
	return j
}

// ScriptRef returns the script set on the job, if any.
func (j *Job) ScriptRef() (string, bool) {
	if j.script == nil {
		return "", false
	}
	return *j.script, true
}

// ParameterFiles returns the job's parameter files in the order they were
// added.
func (j *Job) ParameterFiles() []string {
	files := make([]string, len(j.parameterFiles))
	copy(files, j.parameterFiles)
	return files
}

// PropertyFileRef returns the job's property file, if any.
func (j *Job) PropertyFileRef() (string, bool) {
	if j.propertyFile == nil {
		return "", false
	}
	return *j.propertyFile, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
