package consoles

import (
	"fmt"
	"strings"
)

// MemoryConsole keeps everything printed to it, one entry per Printf.
// Useful in tests.
type MemoryConsole struct {
	prefixes []string
	lines    []string
}

func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

func (o *MemoryConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	o.lines = append(o.lines, builder.String())
}

func (o *MemoryConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *MemoryConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *MemoryConsole) Lines() []string {
	result := make([]string, len(o.lines))
	copy(result, o.lines)
	return result
}

func (o *MemoryConsole) Text() string {
	return strings.Join(o.lines, "")
}
