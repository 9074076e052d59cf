// Package pigfile loads Pig job definitions from YAML files.
package pigfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/lovethedrake/pigjob/pkg/pig"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/technosophos/moniker"
	"github.com/xeipuuv/gojsonschema"
)

// Entry is a single named parameter or property.
type Entry struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Pigfile is the declarative definition of one Pig job. Parameters and
// properties are lists rather than maps so that the order they are written
// in is the order they are rendered in.
type Pigfile struct {
	Name             string   `json:"name"`
	Script           string   `json:"script"`
	ParameterFiles   []string `json:"parameterFiles"`
	Parameters       []Entry  `json:"parameters"`
	Properties       []Entry  `json:"properties"`
	PropertyFile     string   `json:"propertyFile"`
	CommandArguments *string  `json:"commandArguments"`

	// baseDir is the directory relative paths are resolved against. It is
	// empty for Pigfiles that were not loaded from disk.
	baseDir string
}

// NewPigfileFromFile loads a Pigfile from the specified path.
func NewPigfileFromFile(pigfilePath string) (*Pigfile, error) {
	pigfileBytes, err := ioutil.ReadFile(pigfilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading pigfile %s", pigfilePath)
	}
	pigfile, err := NewPigfileFromYAML(pigfileBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading pigfile %s", pigfilePath)
	}
	absPigfilePath, err := filepath.Abs(pigfilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "error resolving path %s", pigfilePath)
	}
	pigfile.baseDir = filepath.Dir(absPigfilePath)
	return pigfile, nil
}

// NewPigfileFromYAML loads a Pigfile from the specified YAML bytes.
func NewPigfileFromYAML(yamlBytes []byte) (*Pigfile, error) {
	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, errors.Wrap(err, "error converting YAML to JSON")
	}
	validationResult, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(jsonSchemaBytes),
		gojsonschema.NewBytesLoader(jsonBytes),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error validating pigfile")
	}
	if !validationResult.Valid() {
		msg := "Pigfile is invalid: "
		for _, resErr := range validationResult.Errors() {
			msg = fmt.Sprintf("%s\n- %s", msg, resErr)
		}
		return nil, errors.New(msg)
	}
	pigfile := &Pigfile{}
	// Numbers stay json.Numbers so that integers render without exponents.
	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	if err := decoder.Decode(pigfile); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling pigfile")
	}
	return pigfile, nil
}

// Job builds the Pig job the Pigfile describes. ${NAME} references in
// string values are resolved from the environment, leading ~ in file paths is
// expanded to the user's home directory and relative file paths are resolved
// against the Pigfile's directory. A job without a name is given a randomly
// generated one.
func (p *Pigfile) Job() (*pig.Job, error) {
	name := resolveEnvVars(p.Name)
	if name == "" {
		name = moniker.New().NameSep("-")
		log.WithField("job", name).Debug("generated job name")
	}
	j := pig.New().JobName(name)

	if p.Script != "" {
		j.Script(p.resolveScript(resolveEnvVars(p.Script)))
	}
	for _, parameterFile := range p.ParameterFiles {
		path, err := p.resolvePath(resolveEnvVars(parameterFile))
		if err != nil {
			return nil, err
		}
		j.ParameterFile(path)
	}
	for _, parameter := range p.Parameters {
		j.Parameter(parameter.Name, resolveValue(parameter.Value))
	}
	for _, property := range p.Properties {
		j.Property(property.Name, resolveValue(property.Value))
	}
	if p.PropertyFile != "" {
		path, err := p.resolvePath(resolveEnvVars(p.PropertyFile))
		if err != nil {
			return nil, err
		}
		j.PropertyFile(path)
	}
	if p.CommandArguments != nil {
		j.CommandArguments(resolveEnvVars(*p.CommandArguments))
	}

	if err := j.Err(); err != nil {
		return nil, errors.Wrapf(err, "error building job %q", name)
	}
	return j, nil
}

// resolveScript returns script as a resolved path when it names an existing
// file and unchanged otherwise, since it may be the script's code.
func (p *Pigfile) resolveScript(script string) string {
	path, err := p.resolvePath(script)
	if err != nil {
		return script
	}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return script
}

func (p *Pigfile) resolvePath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "error expanding path %s", path)
	}
	if p.baseDir != "" && !filepath.IsAbs(expanded) {
		expanded = filepath.Join(p.baseDir, expanded)
	}
	return expanded, nil
}

func resolveValue(value interface{}) interface{} {
	if str, ok := value.(string); ok {
		return resolveEnvVars(str)
	}
	return value
}
