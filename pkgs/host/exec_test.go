package host

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

func TestNewExecInterpreterSplitsCommand(t *testing.T) {
	interp, err := NewExecInterpreter(`nuke -t -c "render mode"`)
	require.NoError(t, err)

	argv := interp.Command("Blur {};")
	assert.Equal(t, []string{"nuke", "-t", "-c", "render mode", "Blur {};"}, argv)
}

func TestNewExecInterpreterRejectsEmptyCommand(t *testing.T) {
	_, err := NewExecInterpreter("   ")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrHostExec), "got %v", err)
}

func TestNewExecInterpreterRejectsUnbalancedQuotes(t *testing.T) {
	_, err := NewExecInterpreter(`nuke -c "unterminated`)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrHostExec), "got %v", err)
}

func TestExecInterpreterRun(t *testing.T) {
	interp, err := NewExecInterpreter("sh -c")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	interp.SetOutput(&stdout, &stderr)

	require.NoError(t, interp.Run(context.Background(), "echo script ran"))
	assert.Equal(t, "script ran\n", stdout.String())
}

func TestExecInterpreterRunFailure(t *testing.T) {
	interp, err := NewExecInterpreter("sh -c")
	require.NoError(t, err)
	interp.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

	err = interp.Run(context.Background(), "exit 3")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrHostExec), "got %v", err)
}

func TestExecPluginSourceListPlugins(t *testing.T) {
	src, err := NewExecPluginSource(`printf 'Blur\nGrade\n\n  Merge\n'`)
	require.NoError(t, err)

	names, err := src.ListPlugins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Blur", "Grade", "Merge"}, names)
}

func TestExecPluginSourceCommandFailure(t *testing.T) {
	src, err := NewExecPluginSource("sh -c 'exit 1'")
	require.NoError(t, err)

	_, err = src.ListPlugins(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrHostExec), "got %v", err)
}
