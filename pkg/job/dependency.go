package job

import "fmt"

// Dependency is a file or an inline blob of content that must be made
// available to the remote execution environment before a job runs. Exactly
// one of Path or Data is meaningful: a Dependency with a Path refers to a
// local file, otherwise Name and Data describe inline content.
type Dependency struct {
	Path string
	Name string
	Data string
}

// FileDependency returns a Dependency on the file at path.
func FileDependency(path string) Dependency {
	return Dependency{Path: path}
}

// InlineDependency returns a Dependency on inline content that will be
// materialized remotely as a file called name.
func InlineDependency(name, data string) Dependency {
	return Dependency{Name: name, Data: data}
}

// IsInline reports whether the dependency carries its own content.
func (d Dependency) IsInline() bool {
	return d.Path == ""
}

func (d Dependency) String() string {
	if d.IsInline() {
		return fmt.Sprintf("inline %s (%d bytes)", d.Name, len(d.Data))
	}
	return fmt.Sprintf("file %s", d.Path)
}
