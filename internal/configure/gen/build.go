package gen

import "strings"

// RenderBuild renders the descriptor artifact: one rc_toolchain target and
// one toolchain declaration per record. An empty record list renders a
// valid file declaring nothing.
func RenderBuild(records []Record) string {
	var sb strings.Builder

	writeln(&sb, "# Windows resource compiler toolchains.")
	writeln(&sb, "# Generated by rcfigure; do not edit.")
	writeln(&sb)
	if len(records) > 0 {
		writeln(&sb, `load("`, rcToolchainBzl, `", "rc_toolchain")`)
		writeln(&sb)
	}
	writeln(&sb, `package(default_visibility = ["//visibility:public"])`)

	for _, rec := range records {
		writeln(&sb)
		writeln(&sb, "rc_toolchain(")
		writeln(&sb, `    name = "`, rec.Name, `",`)
		writeln(&sb, `    rc_exe = ":`, rec.Wrapper, `",`)
		writeln(&sb, ")")
		writeln(&sb)
		writeln(&sb, "toolchain(")
		writeln(&sb, `    name = "`, rec.Toolchain, `",`)
		writeln(&sb, `    exec_compatible_with = ["`, execConstraint, `"],`)
		writeln(&sb, `    target_compatible_with = ["`, rec.CPU, `"],`)
		writeln(&sb, `    toolchain = ":`, rec.Name, `",`)
		writeln(&sb, `    toolchain_type = "`, toolchainType, `",`)
		writeln(&sb, ")")
	}

	return sb.String()
}
