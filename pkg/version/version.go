package version

// Values for these are injected by the build
var (
	version string
	commit  string
)

// Version returns the pigjob version. This is typically a semantic version,
// but in the case of unreleased code, could be another descriptor such as
// "edge". Unset, it reports "devel".
func Version() string {
	if version == "" {
		return "devel"
	}
	return version
}

// Commit returns the git commit SHA for the code that pigjob was built from.
func Commit() string {
	return commit
}
