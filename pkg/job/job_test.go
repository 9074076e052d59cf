package job

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string {
	return "stringified"
}

func TestToText(t *testing.T) {
	testCases := []struct {
		name       string
		value      interface{}
		assertions func(*testing.T, string, error)
	}{
		{
			name:  "string",
			value: "foo",
			assertions: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				require.Equal(t, "foo", text)
			},
		},
		{
			name:  "int",
			value: 42,
			assertions: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				require.Equal(t, "42", text)
			},
		},
		{
			name:  "float",
			value: 1.5,
			assertions: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				require.Equal(t, "1.5", text)
			},
		},
		{
			name:  "bool",
			value: false,
			assertions: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				require.Equal(t, "false", text)
			},
		},
		{
			name:  "stringer",
			value: stringer{},
			assertions: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				require.Equal(t, "stringified", text)
			},
		},
		{
			name:  "nil",
			value: nil,
			assertions: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
				require.True(t, IsInvalidArgument(err))
			},
		},
		{
			name:  "map",
			value: map[string]string{},
			assertions: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
				require.True(t, IsInvalidArgument(err))
				require.Contains(t, err.Error(), "map[string]string")
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			text, err := ToText(testCase.value)
			testCase.assertions(t, text, err)
		})
	}
}

func TestIsInvalidArgument(t *testing.T) {
	assert.False(t, IsInvalidArgument(nil))
	assert.False(t, IsInvalidArgument(errors.New("something else")))
	assert.True(t, IsInvalidArgument(invalidArgument("bad %s", "thing")))
}

func TestDependencies(t *testing.T) {
	j := New("TestJob")
	require.NoError(t, j.RegisterDependency(FileDependency("/a/one")))
	require.NoError(t, j.SetDependency("script", InlineDependency("s.pig", "A")))
	require.NoError(t, j.RegisterDependency(FileDependency("/a/two")))
	require.NoError(t, j.SetDependency("script", FileDependency("/a/s.pig")))
	require.Equal(
		t,
		[]Dependency{
			FileDependency("/a/one"),
			FileDependency("/a/s.pig"),
			FileDependency("/a/two"),
		},
		j.Dependencies(),
	)

	deps := j.Dependencies()
	deps[0] = FileDependency("/changed")
	require.Equal(t, FileDependency("/a/one"), j.Dependencies()[0])

	err := j.RegisterDependency(Dependency{})
	require.True(t, IsInvalidArgument(err))
	require.Len(t, j.Dependencies(), 3)
	require.Equal(t, err, j.Err())
}

func TestDependencyString(t *testing.T) {
	require.Equal(t, "file /a/b.pig", FileDependency("/a/b.pig").String())
	require.Equal(
		t,
		"inline script.pig (7 bytes)",
		InlineDependency("script.pig", "DUMP A;").String(),
	)
}

func TestCommandOptions(t *testing.T) {
	j := New("TestJob")
	require.NoError(t, j.SetCommandOption("-D", "b", "1"))
	require.NoError(t, j.SetCommandOption("-D", "a", 2))
	require.NoError(t, j.SetCommandOption("-X", "c", "3"))
	require.Equal(t, []string{"b", "a"}, j.CommandOptions("-D").Keys())
	require.Equal(t, []string{"c"}, j.CommandOptions("-X").Keys())
	require.Equal(t, 0, j.CommandOptions("-Y").Len())

	require.True(t, IsInvalidArgument(j.SetCommandOption("", "a", "1")))
	require.True(t, IsInvalidArgument(j.SetCommandOption("-D", "", "1")))
	require.True(t, IsInvalidArgument(j.SetCommandOption("-D", "z", nil)))
	require.Equal(t, []string{"b", "a"}, j.CommandOptions("-D").Keys())
}

func TestParameters(t *testing.T) {
	j := New("TestJob")
	require.NoError(t, j.SetParameter("a", "1"))
	require.NoError(t, j.SetParameter("b", 2))
	require.NoError(t, j.SetParameter("a", "3"))
	require.Equal(t, []string{"a", "b"}, j.Parameters().Keys())
	value, _ := j.Parameters().Get("a")
	require.Equal(t, "3", value)
	require.True(t, IsInvalidArgument(j.SetParameter("", "1")))
}

func TestCommandArguments(t *testing.T) {
	j := New("TestJob")
	_, ok := j.CommandArguments()
	require.False(t, ok)
	j.SetCommandArguments("-x local")
	args, ok := j.CommandArguments()
	require.True(t, ok)
	require.Equal(t, "-x local", args)
}

func TestName(t *testing.T) {
	j := New("TestJob")
	require.NoError(t, j.SetName("foo"))
	require.Equal(t, "foo", j.Name())
	require.True(t, IsInvalidArgument(j.SetName("")))
	require.Equal(t, "foo", j.Name())
}

func TestRepr(t *testing.T) {
	j := New("TestJob")
	require.Equal(t, "TestJob()", j.Repr())
	j.Record(ReprAppend, "tag", "a")
	j.Record(ReprOverwrite, "script", "one")
	j.Record(ReprAppend, "tag", "b")
	j.Record(ReprOverwrite, "script", "two")
	j.Record(ReprAppend, "memory", 512)
	require.Equal(
		t,
		"TestJob() \\\n"+
			"    .tag(\"a\") \\\n"+
			"    .script(\"two\") \\\n"+
			"    .tag(\"b\") \\\n"+
			"    .memory(512)",
		j.Repr(),
	)
}
