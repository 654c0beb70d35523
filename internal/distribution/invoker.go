// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"path/filepath"
	"runtime"
	"strings"
)

// selfModule is the module whose frames never count as the invoker.
const selfModule = "github.com/emcd/appcore"

// Frame is a call stack entry.
type Frame struct {
	Function string
	File     string
}

// Package returns the import path of the package declaring the frame's
// function, such as "example.com/app/internal/x" for
// "example.com/app/internal/x.(*T).Method".
func (f Frame) Package() string {
	name := f.Function
	slash := strings.LastIndex(name, "/")
	if dot := strings.Index(name[slash+1:], "."); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}

// launcherPackages run functions on goroutines of their own. Their frames
// sit between appcore and a caller which is no longer on the stack.
var launcherPackages = map[string]struct{}{
	"golang.org/x/sync/errgroup": {},
}

// CallerFrames captures the call stack of its caller, innermost first.
// Capture it on the invoker's goroutine and hand it to
// [Locator.PrepareFrom] when detection runs elsewhere.
func CallerFrames() []Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	out := make([]Frame, 0, n)
	for {
		frame, more := frames.Next()
		out = append(out, Frame{Function: frame.Function, File: frame.File})
		if !more {
			break
		}
	}
	return out
}

// findInvoker walks frames outward and returns the first one outside
// appcore, the standard library and downloaded dependencies. Frames of a
// main package count as foreign even when they belong to appcore's own
// commands. A package path without a dotted first element is taken for the
// standard library unless it belongs to one of modules.
func findInvoker(frames []Frame, modules []string) (Frame, bool) {
	for _, frame := range frames {
		if frame.File == "" || frame.Function == "" {
			continue
		}
		pkg := frame.Package()
		switch {
		case pkg == "main":
			return frame, true
		case ownsPackage(selfModule, pkg), isDependencyFile(frame.File):
			continue
		}
		if _, launcher := launcherPackages[pkg]; launcher {
			continue
		}
		if _, known := owningModule(pkg, modules); known || !isStandardLibrary(pkg) {
			return frame, true
		}
	}
	return Frame{}, false
}

// isDependencyFile reports whether file lies in a module cache directory,
// as in .../pkg/mod/golang.org/x/sync@v0.19.0/errgroup/errgroup.go. Such a
// file belongs to a dependency, never to the project under development.
func isDependencyFile(file string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(file), "/") {
		if at := strings.LastIndex(segment, "@v"); at > 0 {
			return true
		}
	}
	return false
}

func isStandardLibrary(pkg string) bool {
	first, _, _ := strings.Cut(pkg, "/")
	return !strings.Contains(first, ".")
}

// owningModule searches backward through the slash-separated package path
// for the longest prefix which is a known module. The first path element
// is not assumed to be the boundary: nested modules such as
// example.com/repo/tools own their packages even though example.com/repo
// may be known too.
func owningModule(pkg string, modules []string) (string, bool) {
	known := make(map[string]struct{}, len(modules))
	for _, module := range modules {
		known[module] = struct{}{}
	}

	for candidate := pkg; candidate != ""; {
		if _, ok := known[candidate]; ok {
			return candidate, true
		}
		slash := strings.LastIndex(candidate, "/")
		if slash < 0 {
			break
		}
		candidate = candidate[:slash]
	}
	return "", false
}
