package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand re-runs the test binary as a fake compiler
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no command specified\n")
		os.Exit(1)
	}

	switch args[0] {
	case "protoc":
		fmt.Println(strings.Join(args[1:], " "))
		os.Exit(0)
	case "broken":
		fmt.Fprintf(os.Stderr, "vector3d.proto:3:1: Expected top-level statement\n")
		os.Exit(2)
	case "env":
		fmt.Println(os.Getenv("GZMSGS_TEST"))
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func TestExecutor_Run(t *testing.T) {
	var stdout bytes.Buffer
	e := NewExecutor(&Options{Stdout: &stdout})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "protoc", "--go_out=out", "a.proto")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "--go_out=out a.proto")
}

func TestExecutor_RunFailure(t *testing.T) {
	var stderr bytes.Buffer
	e := NewExecutor(&Options{Stderr: &stderr})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "broken")
	require.Error(t, err)

	var ce *CommandError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.ExitCode)
	assert.Contains(t, err.Error(), "broken failed")
	assert.Contains(t, stderr.String(), "Expected top-level statement")
}

func TestExecutor_Cancelled(t *testing.T) {
	e := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	e.commandFunc = mockCommand

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := e.Run(ctx, "sleep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExecutor_Environment(t *testing.T) {
	var stdout bytes.Buffer
	e := NewExecutor(&Options{Stdout: &stdout, Env: []string{"GZMSGS_TEST=on"}})
	e.commandFunc = mockCommand

	require.NoError(t, e.Run(context.Background(), "env"))
	assert.Equal(t, "on\n", stdout.String())
}

func TestExecutor_CommandNotFound(t *testing.T) {
	e := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := e.Run(context.Background(), "gzmsgs-no-such-compiler-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExecutor_RunWithSpinner(t *testing.T) {
	t.Run("success hides output", func(t *testing.T) {
		var stderr bytes.Buffer
		e := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &stderr})
		e.commandFunc = mockCommand

		require.NoError(t, e.RunWithSpinner(context.Background(), "Compiling", "protoc", "x.proto"))
		assert.NotContains(t, stderr.String(), "x.proto")
	})

	t.Run("failure replays output", func(t *testing.T) {
		var stderr bytes.Buffer
		e := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &stderr})
		e.commandFunc = mockCommand

		err := e.RunWithSpinner(context.Background(), "Compiling", "broken")
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Expected top-level statement")
	})
}

func TestPresets(t *testing.T) {
	p := NewPresets()
	assert.Equal(t, []string{"buf", "protoc"}, p.List())

	c, err := p.Get("protoc")
	require.NoError(t, err)
	assert.Equal(t, "protoc", c.Name())

	_, err = p.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buf, protoc")

	err = p.Register(Buf{})
	assert.EqualError(t, err, "compiler preset 'buf' is already registered")

	require.NoError(t, p.Register(Custom{Program: "gz-protoc"}))
	assert.Equal(t, []string{"buf", "custom", "protoc"}, p.List())
}

func TestCompilerCommands(t *testing.T) {
	req := CompileRequest{
		ProtoPaths: []string{"proto"},
		OutDir:     "gen",
		Files:      []string{"gz/msgs/a.proto", "gz/msgs/b.proto"},
	}

	tests := []struct {
		name     string
		compiler Compiler
		module   string
		wantName string
		wantArgs []string
	}{
		{
			name:     "protoc",
			compiler: Protoc{},
			wantName: "protoc",
			wantArgs: []string{"--proto_path=proto", "--go_out=gen", "--go_opt=paths=source_relative", "gz/msgs/a.proto", "gz/msgs/b.proto"},
		},
		{
			name:     "protoc with module",
			compiler: Protoc{},
			module:   "github.com/gazebosim/gz-msgs",
			wantName: "protoc",
			wantArgs: []string{"--proto_path=proto", "--go_out=gen", "--go_opt=module=github.com/gazebosim/gz-msgs", "gz/msgs/a.proto", "gz/msgs/b.proto"},
		},
		{
			name:     "buf",
			compiler: Buf{},
			wantName: "buf",
			wantArgs: []string{"generate", "--output", "gen", "--path", "gz/msgs/a.proto", "--path", "gz/msgs/b.proto"},
		},
		{
			name:     "custom",
			compiler: Custom{Program: "gz-protoc", Args: []string{"-I", "{proto_path}", "--out={out}", "{files}"}},
			wantName: "gz-protoc",
			wantArgs: []string{"-I", "proto", "--out=gen", "gz/msgs/a.proto", "gz/msgs/b.proto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := req
			req.GoModule = tt.module
			name, args := tt.compiler.Command(req)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestExecutor_CompileNoFiles(t *testing.T) {
	e := NewExecutor(nil)
	err := e.Compile(context.Background(), Protoc{}, CompileRequest{}, false)
	assert.EqualError(t, err, "no schema files to compile")
}

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrefixWriter(&buf, "[protoc] ")

	_, _ = w.Write([]byte("first\nsec"))
	_, _ = w.Write([]byte("ond\nthird"))
	assert.Equal(t, "[protoc] first\n[protoc] second\n", buf.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "[protoc] first\n[protoc] second\n[protoc] third\n", buf.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, `protoc "--go_out=my dir" a.proto`, String("protoc", "--go_out=my dir", "a.proto"))
}
