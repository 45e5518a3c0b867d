package publish

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"reelpub/internal/catalog"
)

// ErrInputClosed is returned when the operator's input ends before a value
// was entered.
var ErrInputClosed = errors.New("manual input closed")

// Manual collects identifiers typed by an operator after uploading by hand.
type Manual struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewManual reads answers from in and writes prompts to out.
func NewManual(in io.Reader, out io.Writer) *Manual {
	return &Manual{in: bufio.NewScanner(in), out: out}
}

// Publish prompts until a non-blank value is entered.
func (m *Manual) Publish(ctx context.Context, entry catalog.AssetEntry) (Result, error) {
	label := entry.Label
	if label == "" {
		label = entry.Filename
	}
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(m.out, "%s video ID: ", label)
		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			if err := m.in.Err(); err != nil {
				return Result{}, fmt.Errorf("read video id for %s: %w", entry.Filename, err)
			}
			return Result{}, fmt.Errorf("%w while waiting for %s", ErrInputClosed, entry.Filename)
		}
		value := strings.TrimSpace(m.in.Text())
		if value != "" {
			return Result{Filename: entry.Filename, ExternalID: value}, nil
		}
		fmt.Fprintln(m.out, "   Please enter a valid video ID")
	}
}
