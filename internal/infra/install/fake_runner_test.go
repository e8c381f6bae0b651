package install

import (
	"context"
	"errors"
)

type runCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls  []runCall
	failOn int
}

var errFakeExit = errors.New("exit status 1")

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, runCall{dir: dir, name: name, args: args})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return errFakeExit
	}
	return nil
}

type recordingUI struct {
	infos []string
}

func (r *recordingUI) Info(msg string) { r.infos = append(r.infos, msg) }
