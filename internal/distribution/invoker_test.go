package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_Package(t *testing.T) {
	tests := []struct {
		function string
		want     string
	}{
		{function: "main.main", want: "main"},
		{function: "github.com/emcd/appcore/internal/distribution.(*Locator).Prepare", want: "github.com/emcd/appcore/internal/distribution"},
		{function: "example.com/app.Run.func1", want: "example.com/app"},
		{function: "runtime.goexit", want: "runtime"},
	}

	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			assert.Equal(t, tt.want, Frame{Function: tt.function}.Package())
		})
	}
}

func TestOwningModule(t *testing.T) {
	modules := []string{"example.com/ns", "example.com/ns/inner", "localapp"}

	got, ok := owningModule("example.com/ns/inner/pkg/sub", modules)
	assert.True(t, ok)
	assert.Equal(t, "example.com/ns/inner", got, "longest known prefix owns the package")

	got, ok = owningModule("example.com/ns/other", modules)
	assert.True(t, ok)
	assert.Equal(t, "example.com/ns", got)

	got, ok = owningModule("localapp/cmd", modules)
	assert.True(t, ok)
	assert.Equal(t, "localapp", got)

	_, ok = owningModule("example.com/unknown", modules)
	assert.False(t, ok)
}

func TestFindInvoker(t *testing.T) {
	frames := []Frame{
		{Function: "github.com/emcd/appcore/internal/distribution.CallerFrames", File: "/a/invoker.go"},
		{Function: "runtime.doInit", File: "/go/src/runtime/proc.go"},
		{Function: "localapp/cmd.Execute", File: "/src/localapp/cmd/root.go"},
	}

	frame, ok := findInvoker(frames, []string{"localapp"})
	assert.True(t, ok)
	assert.Equal(t, "/src/localapp/cmd/root.go", frame.File)

	_, ok = findInvoker(frames, nil)
	assert.False(t, ok, "dotless packages outside known modules look like the standard library")

	frame, ok = findInvoker([]Frame{{Function: "main.main", File: "/src/app/main.go"}}, nil)
	assert.True(t, ok)
	assert.Equal(t, "/src/app/main.go", frame.File)
}

// TestCallerFrames_IncludesTest verifies that real stack inspection sees the
// calling test function.
func TestCallerFrames_IncludesTest(t *testing.T) {
	frames := CallerFrames()
	found := false
	for _, frame := range frames {
		if frame.Function == "github.com/emcd/appcore/internal/distribution.TestCallerFrames_IncludesTest" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestFindInvoker_SkipsGoroutineLaunchers verifies that a stack captured on
// an errgroup goroutine yields no invoker instead of the errgroup frame.
func TestFindInvoker_SkipsGoroutineLaunchers(t *testing.T) {
	frames := []Frame{
		{Function: "github.com/emcd/appcore/internal/distribution.(*Locator).Prepare", File: "/src/appcore/internal/distribution/locator.go"},
		{Function: "github.com/emcd/appcore/preparation.(*preparer).detect.func2", File: "/src/appcore/preparation/prepare.go"},
		{Function: "golang.org/x/sync/errgroup.(*Group).Go.func1", File: "/src/vendor/golang.org/x/sync/errgroup/errgroup.go"},
		{Function: "runtime.goexit", File: "/usr/lib/go/src/runtime/asm_amd64.s"},
	}

	_, ok := findInvoker(frames, []string{"example.com/demo", "golang.org/x/sync"})

	assert.False(t, ok)
}

func TestFindInvoker_SkipsModuleCacheFrames(t *testing.T) {
	frames := []Frame{
		{Function: "github.com/spf13/cobra.(*Command).execute", File: "/root/go/pkg/mod/github.com/spf13/cobra@v1.10.2/command.go"},
		{Function: "example.com/demo/cmd.Execute", File: "/src/demo/cmd/root.go"},
	}

	frame, ok := findInvoker(frames, []string{"example.com/demo", "github.com/spf13/cobra"})

	assert.True(t, ok)
	assert.Equal(t, "/src/demo/cmd/root.go", frame.File)
}

func TestIsDependencyFile(t *testing.T) {
	assert.True(t, isDependencyFile("/root/go/pkg/mod/golang.org/x/sync@v0.19.0/errgroup/errgroup.go"))
	assert.True(t, isDependencyFile("golang.org/x/sync@v0.19.0/errgroup/errgroup.go"), "trimpath builds")
	assert.False(t, isDependencyFile("/src/demo/cmd/root.go"))
	assert.False(t, isDependencyFile("/home/user/me@work/demo/main.go"))
}
