package optdoc

import "strings"

// FormatEntry formats a single entry for terminal display:
// a heading with the option name, the description, then the type.
func FormatEntry(e DocEntry) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(e.Option.Name())
	b.WriteString("\n")
	b.WriteString(e.Option.Description)
	b.WriteString("\ntype: ")
	b.WriteString(e.Option.Type)
	b.WriteString("\n\n")
	return b.String()
}

// FormatEntries formats entries in order. Each entry ends with a blank line.
func FormatEntries(entries []DocEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
	}
	return b.String()
}
