package gen

import "strings"

// RenderRegister renders the registration artifact: exactly one entry
// point. With no records its body is a no-op, otherwise it registers every
// toolchain label in record order.
func RenderRegister(records []Record) string {
	var sb strings.Builder

	writeln(&sb, "# Generated by rcfigure; do not edit.")
	writeln(&sb)
	writeln(&sb, "def registerDiscoveredToolchains():")
	if len(records) == 0 {
		writeln(&sb, "    pass")
		return sb.String()
	}
	writeln(&sb, "    native.register_toolchains(")
	for _, rec := range records {
		writeln(&sb, `        "`, rec.Label, `",`)
	}
	writeln(&sb, "    )")

	return sb.String()
}
