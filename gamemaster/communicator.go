package gamemaster

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Communicator carries protocol lines to and from the referee.
type Communicator interface {
	// ReadLine blocks for the next line. It returns io.EOF when the referee hangs up.
	ReadLine() (string, error)
	WriteLine(line string) error
}

type streamCommunicator struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewStreamCommunicator speaks the protocol over a reader and writer, typically stdin and stdout.
func NewStreamCommunicator(r io.Reader, w io.Writer) Communicator {
	return &streamCommunicator{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

func (c *streamCommunicator) ReadLine() (string, error) {
	for c.scanner.Scan() {
		line := strings.TrimSpace(c.scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (c *streamCommunicator) WriteLine(line string) error {
	_, err := fmt.Fprintln(c.w, line)
	return err
}
