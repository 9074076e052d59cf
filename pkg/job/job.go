package job

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Job holds the configuration shared by every job type: its name, the
// dependencies that must be shipped alongside it, flag-grouped command
// options, script parameters and an optional explicit command line. Job
// types embed a *Job and add their own setters on top of it.
//
// A Job is not safe for concurrent mutation.
type Job struct {
	name             string
	dependencies     []Dependency
	dependencySlots  map[string]int
	commandOptions   map[string]*OrderedMap
	parameters       *OrderedMap
	commandArguments *string
	repr             repr
	err              error
}

// New returns an empty Job whose representation is rendered as a call to
// constructor.
func New(constructor string) *Job {
	return &Job{
		dependencySlots: map[string]int{},
		commandOptions:  map[string]*OrderedMap{},
		parameters:      NewOrderedMap(),
		repr:            repr{constructor: constructor},
	}
}

// Name returns the job's name.
func (j *Job) Name() string {
	return j.name
}

// SetName sets the job's name.
func (j *Job) SetName(name string) error {
	if name == "" {
		return j.fail(invalidArgument("job name is required"))
	}
	j.name = name
	j.Record(ReprOverwrite, "job_name", name)
	return nil
}

// RegisterDependency appends dep to the job's dependencies.
func (j *Job) RegisterDependency(dep Dependency) error {
	if err := validateDependency(dep); err != nil {
		return j.fail(err)
	}
	j.dependencies = append(j.dependencies, dep)
	log.WithField("dependency", dep.String()).Debug("registered dependency")
	return nil
}

// SetDependency registers dep under slot. The first registration for a slot
// is appended to the job's dependencies; later ones replace it in place.
func (j *Job) SetDependency(slot string, dep Dependency) error {
	if err := validateDependency(dep); err != nil {
		return j.fail(err)
	}
	if i, ok := j.dependencySlots[slot]; ok {
		log.WithFields(log.Fields{
			"slot":       slot,
			"replaced":   j.dependencies[i].String(),
			"dependency": dep.String(),
		}).Debug("replaced dependency")
		j.dependencies[i] = dep
		return nil
	}
	j.dependencySlots[slot] = len(j.dependencies)
	j.dependencies = append(j.dependencies, dep)
	log.WithFields(log.Fields{
		"slot":       slot,
		"dependency": dep.String(),
	}).Debug("registered dependency")
	return nil
}

// Dependencies returns the job's dependencies in registration order.
func (j *Job) Dependencies() []Dependency {
	// Callers must not be able to alter the job's own slice.
	deps := make([]Dependency, len(j.dependencies))
	copy(deps, j.dependencies)
	return deps
}

// SetCommandOption stores value under name within the option group flag.
func (j *Job) SetCommandOption(flag, name string, value interface{}) error {
	if flag == "" {
		return j.fail(invalidArgument("command option flag is required"))
	}
	if name == "" {
		return j.fail(invalidArgument("name is required for option %s", flag))
	}
	text, err := ToText(value)
	if err != nil {
		return j.fail(errors.Wrapf(err, "error setting option %s%s", flag, name))
	}
	group, ok := j.commandOptions[flag]
	if !ok {
		group = NewOrderedMap()
		j.commandOptions[flag] = group
	}
	group.Set(name, text)
	return nil
}

// CommandOptions returns the options stored in the group flag. The returned
// map is empty, never nil, when the group was never set.
func (j *Job) CommandOptions(flag string) *OrderedMap {
	if group, ok := j.commandOptions[flag]; ok {
		return group
	}
	return NewOrderedMap()
}

// SetParameter stores a script parameter.
func (j *Job) SetParameter(name string, value interface{}) error {
	if name == "" {
		return j.fail(invalidArgument("parameter name is required"))
	}
	text, err := ToText(value)
	if err != nil {
		return j.fail(errors.Wrapf(err, "error setting parameter %q", name))
	}
	j.parameters.Set(name, text)
	j.Record(ReprAppend, "parameter", name, text)
	return nil
}

// Parameters returns the job's script parameters.
func (j *Job) Parameters() *OrderedMap {
	return j.parameters
}

// SetCommandArguments sets an explicit command line that replaces whatever
// a job type would otherwise render.
func (j *Job) SetCommandArguments(args string) {
	j.commandArguments = &args
	j.Record(ReprOverwrite, "command_arguments", args)
}

// CommandArguments returns the explicit command line, if one was set.
func (j *Job) CommandArguments() (string, bool) {
	if j.commandArguments == nil {
		return "", false
	}
	return *j.commandArguments, true
}

// Record adds a setter call to the job's representation.
func (j *Job) Record(mode ReprMode, method string, args ...interface{}) {
	j.repr.record(mode, method, args...)
}

// Repr returns the job as a chain of setter calls.
func (j *Job) Repr() string {
	return j.repr.String()
}

// Fail records err as the job's error if no earlier error was recorded and
// returns err unchanged.
func (j *Job) Fail(err error) error {
	return j.fail(err)
}

// Err returns the first error any setter encountered, if any.
func (j *Job) Err() error {
	return j.err
}

func (j *Job) fail(err error) error {
	if j.err == nil {
		j.err = err
	}
	return err
}

func validateDependency(dep Dependency) error {
	if dep.IsInline() && dep.Name == "" {
		return invalidArgument("dependency requires a path or a name")
	}
	return nil
}
