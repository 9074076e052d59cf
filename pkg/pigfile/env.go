package pigfile

import (
	"os"
	"regexp"
)

var valFromEnvVarRegex = regexp.MustCompile(`\$\{(\w+)\}`)

// resolveEnvVars replaces every ${NAME} in val with the value of the
// environment variable NAME. Unset variables resolve to the empty string.
// Substituted values are not expanded again.
func resolveEnvVars(val string) string {
	return valFromEnvVarRegex.ReplaceAllStringFunc(val, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
