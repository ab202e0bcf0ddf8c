package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks yes/no questions on the terminal. Prompts go to stderr
// so they never mix with packed output on stdout.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConfirmer() *Confirmer {
	return &Confirmer{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
	}
}

// SetStreams overrides the prompt streams, for tests.
func (c *Confirmer) SetStreams(in io.Reader, out io.Writer) {
	c.in = bufio.NewReader(in)
	c.out = out
}

// ConfirmLargeItems lists the paths that dominate the output and asks
// whether to exclude them and regenerate. Only "y" or "yes" accept;
// empty input and read errors decline.
func (c *Confirmer) ConfirmLargeItems(items []string) bool {
	_, _ = fmt.Fprintln(c.out, StyleWarning.Render("Warning: The following items contribute a large portion of the total output:"))
	for _, item := range items {
		_, _ = fmt.Fprintf(c.out, "  - %s\n", item)
	}
	_, _ = fmt.Fprint(c.out, "Do you want to automatically exclude them and regenerate the output? [y/N]: ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		_, _ = fmt.Fprintln(c.out)
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
