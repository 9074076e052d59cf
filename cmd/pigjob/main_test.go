package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testPigfile = `
name: example
script: DUMP A;
parameters:
- name: p1
  value: v1 with spaces
properties:
- name: mapred.foo
  value: fizz
propertyFile: props.conf
`

func runApp(t *testing.T, args ...string) (string, error) {
	out, _, err := runAppInDir(t, args...)
	return out, err
}

func runAppInDir(t *testing.T, args ...string) (string, string, error) {
	dir := t.TempDir()
	pigfilePath := filepath.Join(dir, "Pigfile.yaml")
	require.NoError(t, ioutil.WriteFile(pigfilePath, []byte(testPigfile), 0644))
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	err := app.Run(append([]string{"pigjob", "--file", pigfilePath}, args...))
	return out.String(), dir, err
}

func TestRender(t *testing.T) {
	out, err := runApp(t, "render")
	require.NoError(t, err)
	require.Equal(
		t,
		"-Dmapred.foo=fizz -P props.conf -p 'p1=v1 with spaces' -f script.pig\n",
		out,
	)
}

func TestArgv(t *testing.T) {
	out, err := runApp(t, "argv")
	require.NoError(t, err)
	require.Equal(
		t,
		"-Dmapred.foo=fizz\n-P\nprops.conf\n-p\np1=v1 with spaces\n-f\nscript.pig\n",
		out,
	)
}

func TestDeps(t *testing.T) {
	out, dir, err := runAppInDir(t, "deps")
	require.NoError(t, err)
	require.Equal(
		t,
		"inline script.pig (7 bytes)\n"+
			"file "+filepath.Join(dir, "props.conf")+"\n",
		out,
	)
}

func TestDebugFlag(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	log.SetLevel(log.InfoLevel)
	_, err := runApp(t, "render")
	require.NoError(t, err)
	require.Equal(t, log.InfoLevel, log.GetLevel())

	_, err = runApp(t, "--debug", "render")
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestDebugEnvVar(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	require.NoError(t, os.Setenv(envDebug, "true"))
	defer os.Unsetenv(envDebug) // nolint: errcheck

	log.SetLevel(log.InfoLevel)
	_, err := runApp(t, "render")
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestShow(t *testing.T) {
	out, err := runApp(t, "show")
	require.NoError(t, err)
	require.Contains(t, out, "PigJob()")
	require.Contains(t, out, `.job_name("example")`)
	require.Contains(t, out, `.parameter("p1", "v1 with spaces")`)
}

func TestMissingPigfile(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{
		"pigjob",
		"--file", filepath.Join(t.TempDir(), "Pigfile.yaml"),
		"render",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading pigfile")
}
