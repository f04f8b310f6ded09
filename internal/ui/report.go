package ui

import (
	"fmt"

	"github.com/jobtrackai/fix-components/internal/materialize"
)

var _ materialize.Reporter = (*UI)(nil)

// Created reports a file written with its expected content
func (u *UI) Created(path string) {
	u.Successf("Fixed: %s", path)
}

// DirectoryFailed reports a parent directory that could not be created
func (u *UI) DirectoryFailed(dir string, err error) {
	u.Errorf("Directory error %s: %v", dir, err)
}

// WriteFailed reports a file that could not be written
func (u *UI) WriteFailed(path string, err error) {
	u.Errorf("Write error %s: %v", path, err)
}

// Done prints the summary after every entry was processed
func (u *UI) Done(report materialize.Report) {
	fmt.Fprintln(u.output)
	u.Separator()

	if report.OK() {
		u.Successf("Done! %d/%d components written.", report.Created(), len(report))
		return
	}

	u.Warningf("Done with errors: %d/%d components written, %d failed.",
		report.Created(), len(report), report.Failed())
}
