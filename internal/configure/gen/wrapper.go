package gen

import "strings"

// WrapperName returns the wrapper script filename for an architecture key.
func WrapperName(arch string) string {
	return "rc_" + arch + ".bat"
}

// WrapperScript renders a batch script forwarding every argument, verbatim,
// to the resource compiler at rcPath. The orchestrator references the
// script by its repository-relative name; the absolute path may not be
// visible from its sandbox.
func WrapperScript(rcPath string) string {
	var sb strings.Builder
	writeln(&sb, "@echo off")
	writeln(&sb, `"`, rcPath, `" %*`)
	return sb.String()
}
