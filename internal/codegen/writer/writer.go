// Package writer builds indented TypeScript declaration text.
package writer

import (
	"bytes"
	"fmt"
	"strings"
)

// MaxWidth is the line width past which union aliases are split one member per line
const MaxWidth = 100

// Writer accumulates declaration lines at the current nesting depth
type Writer struct {
	buf    bytes.Buffer
	indent string
	depth  int
}

// NewWriter creates a writer that indents each level with indent
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent}
}

// Indent opens a nesting level
func (w *Writer) Indent() {
	w.depth++
}

// Dedent closes a nesting level; extra calls are ignored
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// WriteLine writes s as one indented line. An empty s writes a bare newline.
func (w *Writer) WriteLine(s string) {
	if s != "" {
		w.buf.WriteString(w.prefix())
		w.buf.WriteString(s)
	}
	w.buf.WriteByte('\n')
}

// WriteLinef formats and writes one indented line
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// BlankLine separates declarations: it writes an empty line unless the
// output is empty or already ends with one
func (w *Writer) BlankLine() {
	if w.buf.Len() > 0 && !bytes.HasSuffix(w.buf.Bytes(), []byte("\n\n")) {
		w.buf.WriteByte('\n')
	}
}

// WriteBlock writes opener, the indented body and closer
func (w *Writer) WriteBlock(opener, closer string, body func()) {
	w.WriteLine(opener)
	w.Indent()
	body()
	w.Dedent()
	w.WriteLine(closer)
}

// WriteComment writes a line comment
func (w *Writer) WriteComment(comment string) {
	w.WriteLine("// " + comment)
}

// WriteJSDoc writes a documentation comment. Single lines use the compact form.
func (w *Writer) WriteJSDoc(doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}

	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		w.WriteLinef("/** %s */", escapeDoc(lines[0]))
		return
	}
	w.WriteLine("/**")
	for _, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			w.WriteLine(" *")
		} else {
			w.WriteLine(" * " + escapeDoc(line))
		}
	}
	w.WriteLine(" */")
}

// WriteUnion declares an exported union alias. No members declares never;
// unions wider than MaxWidth put each member on its own line.
func (w *Writer) WriteUnion(name string, members []string) {
	head := "export type " + name + " ="
	if len(members) == 0 {
		w.WriteLine(head + " never;")
		return
	}

	inline := head + " " + strings.Join(members, " | ") + ";"
	if len(w.prefix())+len(inline) <= MaxWidth {
		w.WriteLine(inline)
		return
	}

	w.WriteLine(head)
	w.Indent()
	for i, m := range members {
		if i == len(members)-1 {
			m += ";"
		}
		w.WriteLine("| " + m)
	}
	w.Dedent()
}

// String returns the text written so far
func (w *Writer) String() string {
	return w.buf.String()
}

// Bytes returns a copy of the text written so far
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

func (w *Writer) prefix() string {
	return strings.Repeat(w.indent, w.depth)
}

// escapeDoc keeps schema docs from closing the comment early
func escapeDoc(line string) string {
	return strings.ReplaceAll(line, "*/", "*\\/")
}
