// Package console reads prompted lines from an input stream and writes text to an output stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console pairs a buffered reader with a writer. It is not safe for concurrent use.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New wraps in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its terminator.
// A last line without a trailing newline is still returned; io.EOF is reported only once no data is left.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimTerminator(line), nil
		}
		return "", err
	}
	return trimTerminator(line), nil
}

// Println writes a line to the output.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
