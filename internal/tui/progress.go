package tui

import (
	"fmt"
	"io"
	"os"
)

// SimpleProgress prints sequential step lines. It writes to stderr by
// default; the packed document owns stdout.
type SimpleProgress struct {
	writer  io.Writer
	title   string
	started bool
}

func NewSimpleProgress(title string) *SimpleProgress {
	return &SimpleProgress{
		title: title,
	}
}

func (sp *SimpleProgress) SetWriter(w io.Writer) {
	sp.writer = w
}

func (sp *SimpleProgress) getWriter() io.Writer {
	if sp.writer == nil {
		return os.Stderr
	}
	return sp.writer
}

func (sp *SimpleProgress) Start() {
	if sp.started {
		return
	}
	sp.started = true
	_, _ = fmt.Fprintln(sp.getWriter())
	_, _ = fmt.Fprintln(sp.getWriter(), StyleTitle.Render(" "+sp.title+" "))
	_, _ = fmt.Fprintln(sp.getWriter())
}

func (sp *SimpleProgress) Step(message string) {
	_, _ = fmt.Fprintf(sp.getWriter(), "%s %s\n",
		StyleHighlight.Render(IconStep),
		message)
}

func (sp *SimpleProgress) Success(message string) {
	_, _ = fmt.Fprintf(sp.getWriter(), "%s %s\n",
		StyleSuccess.Render(IconSuccess),
		StyleSuccess.Render(message))
}

func (sp *SimpleProgress) Error(message string) {
	_, _ = fmt.Fprintf(sp.getWriter(), "%s %s\n",
		StyleError.Render(IconError),
		StyleError.Render(message))
}

func (sp *SimpleProgress) Warning(message string) {
	_, _ = fmt.Fprintf(sp.getWriter(), "%s %s\n",
		StyleWarning.Render(IconWarning),
		message)
}

func (sp *SimpleProgress) Info(message string) {
	_, _ = fmt.Fprintf(sp.getWriter(), "  %s\n",
		StyleMuted.Render(message))
}

func (sp *SimpleProgress) Done() {
	_, _ = fmt.Fprintln(sp.getWriter())
}

func (sp *SimpleProgress) Failed(err error) {
	_, _ = fmt.Fprintln(sp.getWriter())
	if err != nil {
		_, _ = fmt.Fprintf(sp.getWriter(), "%s %s\n",
			StyleError.Render(IconError+" Failed:"),
			err.Error())
	} else {
		_, _ = fmt.Fprintf(sp.getWriter(), "%s\n",
			StyleError.Render(IconError+" Failed"))
	}
}
