package commands

import (
	"context"
	"errors"
	"strings"
)

type fakeRunner struct {
	calls  []string
	dirs   []string
	failOn int
}

var errInstallFailed = errors.New("exit status 1")

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	f.dirs = append(f.dirs, dir)
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return errInstallFailed
	}
	return nil
}
