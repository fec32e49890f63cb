package util

import (
	"fmt"
	"runtime"
	"strings"
)

type Stack *[]uintptr

// CurrentStack captures the stack of the caller of the error constructor. The skipped frames are runtime.Callers,
// CurrentStack itself and the error constructor, which are irrelevant to the function creating the error.
func CurrentStack() Stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func PrintableStackTrace(stack Stack) string {
	if stack == nil {
		return ""
	}

	var sb strings.Builder
	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		if f == nil {
			continue
		}
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

// FormatWithStack implements the fmt.Formatter behaviour shared by all typed errors: "%v" prints the message followed by
// the stack trace, "%s" only the message.
func FormatWithStack(s fmt.State, verb rune, message string, stack Stack) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", message, PrintableStackTrace(stack))
	case 's':
		fmt.Fprintf(s, "%s", message)
	case 'q':
		fmt.Fprintf(s, "%q", message)
	}
}
