package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rofipaste/internal/errors"
	"rofipaste/internal/process"
	"rofipaste/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  []process.Command
	result process.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.result, f.err
}

func TestResolvePlainPaste(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{
		"note.txt": "  keep leading\nand inner  \n\n\t \n",
	})
	path := filepath.Join(root, "note.txt")
	runner := &fakeRunner{}
	r := New(runner)

	first, err := r.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "  keep leading\nand inner", first)

	second, err := r.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, runner.calls, "plain pastes are never executed")
}

func TestResolveRunsShebang(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{
		"hi.sh": "#!/usr/bin/env bash\necho hi",
	})

	text, err := New(process.NewExecRunner()).Resolve(context.Background(), filepath.Join(root, "hi.sh"))
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

func TestResolveInterpreterArguments(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{
		"gen.py": "#!/usr/bin/python3 -u\nprint('x')\n",
	})
	path := filepath.Join(root, "gen.py")
	runner := &fakeRunner{result: process.Result{Stdout: "generated\n\n"}}

	text, err := New(runner).Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "generated", text)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, process.Command{Name: "/usr/bin/python3", Args: []string{"-u", path}}, runner.calls[0])
}

func TestResolveScriptFailureIsRecoverable(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{
		"broken.sh": "#!/bin/sh\nexit 4\n",
	})
	path := filepath.Join(root, "broken.sh")
	runner := &fakeRunner{result: process.Result{ExitCode: 4, Stderr: "boom\n"}}

	_, err := New(runner).Resolve(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.IsRecoverable(err))

	var execErr *errors.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, path, execErr.Path())
	assert.Equal(t, "boom", execErr.Stderr())
}

func TestResolveMissingInterpreter(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{
		"odd.sh": "#!/no/such/interpreter\nwhatever\n",
	})

	_, err := New(process.NewExecRunner()).Resolve(context.Background(), filepath.Join(root, "odd.sh"))
	require.Error(t, err)
	assert.True(t, errors.IsExecution(err))
}

func TestResolveEmptyShebang(t *testing.T) {
	root := t.TempDir()
	testutils.WritePastes(t, root, map[string]string{"empty.sh": "#!   \necho\n"})
	runner := &fakeRunner{}

	_, err := New(runner).Resolve(context.Background(), filepath.Join(root, "empty.sh"))
	require.Error(t, err)
	assert.True(t, errors.IsExecution(err))
	assert.Empty(t, runner.calls)
}

func TestResolveMissingFile(t *testing.T) {
	_, err := New(&fakeRunner{}).Resolve(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.False(t, errors.IsRecoverable(err))
}

func TestResolveShebangOnlyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/true"), 0644))
	runner := &fakeRunner{}

	text, err := New(runner).Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "", text)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/bin/true", runner.calls[0].Name)
}
