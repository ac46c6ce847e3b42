package order

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// AffirmativeAnswer is the only response that confirms an order.
const AffirmativeAnswer = "yes"

// Confirmer supplies the customer's answer to the confirmation prompt. The
// prompt itself has already been written by the flow.
type Confirmer interface {
	Confirm(ctx context.Context) (string, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context) (string, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context) (string, error) {
	return f(ctx)
}

// FixedAnswer is a Confirmer that always gives the same answer. An empty
// FixedAnswer declines.
type FixedAnswer string

// Confirm returns the fixed answer.
func (a FixedAnswer) Confirm(context.Context) (string, error) {
	return string(a), nil
}

// LineConfirmer reads one line per confirmation from a reader, typically
// stdin.
type LineConfirmer struct {
	r *bufio.Reader
}

// NewLineConfirmer wraps r.
func NewLineConfirmer(r io.Reader) *LineConfirmer {
	return &LineConfirmer{r: bufio.NewReader(r)}
}

type lineResult struct {
	line string
	err  error
}

// Confirm blocks until a full line is read, the reader ends, or ctx is done.
// A final line without a trailing newline is still returned.
func (c *LineConfirmer) Confirm(ctx context.Context) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := c.r.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

// IsAffirmative reports whether a response confirms the order. Surrounding
// whitespace and letter case are ignored; nothing else is.
func IsAffirmative(response string) bool {
	return strings.EqualFold(strings.TrimSpace(response), AffirmativeAnswer)
}
