// Package prompt drives the interactive question/answer loop of the console.
//
// Every question blocks until the operator types a value its parser accepts.
// Rejected values print the parser's message and the same question is asked
// again, with no retry limit. Only a failing input stream (EOF, closed
// terminal) ends the loop early.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"airline/shared/failure"
)

// Streams bundles the console endpoints so they can be swapped in tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

func New(streams Streams) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(streams.In),
		out: streams.Out,
		err: streams.Err,
	}
}

// Printf writes to the console output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the console output.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Errorf writes to the console error stream.
func (p *Prompter) Errorf(format string, args ...any) {
	fmt.Fprintf(p.err, format, args...)
}

// Output returns the console output writer.
func (p *Prompter) Output() io.Writer {
	return p.out
}

// ReadLine prints label and returns the next input line without its line ending
// and surrounding blanks.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Ask repeats label until parse accepts the answer. Parser errors that the
// operator can fix are printed and the question is asked again; any other
// parser error is returned as is.
func Ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T

	for {
		raw, err := p.ReadLine(label)
		if err != nil {
			return zero, err
		}

		value, err := parse(raw)
		if err == nil {
			return value, nil
		}

		if !failure.Recoverable(err) {
			return zero, err
		}

		fmt.Fprintf(p.out, "Invalid input: %s. Please try again.\n", err.Error())
	}
}
