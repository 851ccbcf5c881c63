package prompt_test

import (
	"airline/shared/failure"
	"airline/shared/prompt"
	"airline/shared/validator"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return prompt.New(prompt.Streams{In: strings.NewReader(input), Out: out, Err: io.Discard}), out
}

func seats(raw string) (int, error) {
	return validator.NumberInRange("seats", raw, "gte=1,lt=500")
}

func TestAsk_RetriesUntilValid(t *testing.T) {
	p, out := newPrompter("0\n500\nabc\n499\n")

	got, err := prompt.Ask(p, "Seats: ", seats)

	require.NoError(t, err)
	assert.Equal(t, 499, got)
	assert.Equal(t, 4, strings.Count(out.String(), "Seats: "))
	assert.Equal(t, 3, strings.Count(out.String(), "Please try again."))
}

func TestAsk_TrimsInput(t *testing.T) {
	p, _ := newPrompter("  Boeing \r\n")

	got, err := prompt.Ask(p, "Make: ", func(raw string) (string, error) {
		return validator.Text("plane make", raw, 32)
	})

	require.NoError(t, err)
	assert.Equal(t, "Boeing", got)
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("180")

	got, err := prompt.Ask(p, "Seats: ", seats)

	require.NoError(t, err)
	assert.Equal(t, 180, got)
}

func TestAsk_EndOfInput(t *testing.T) {
	p, _ := newPrompter("0\n")

	_, err := prompt.Ask(p, "Seats: ", seats)

	assert.ErrorIs(t, err, io.EOF)
}

func TestAsk_ConflictIsRetried(t *testing.T) {
	p, out := newPrompter("101\n102\n")
	taken := map[int]bool{101: true}

	got, err := prompt.Ask(p, "ID: ", func(raw string) (int, error) {
		id, err := validator.PositiveNumber("plane ID", raw)
		if err != nil {
			return 0, err
		}

		if taken[id] {
			return 0, failure.Conflict("plane 101 already exists")
		}

		return id, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 102, got)
	assert.Contains(t, out.String(), "plane 101 already exists")
}

func TestAsk_InternalErrorStops(t *testing.T) {
	p, _ := newPrompter("101\n102\n")
	dbErr := errors.New("connection refused")

	_, err := prompt.Ask(p, "ID: ", func(string) (int, error) {
		return 0, dbErr
	})

	assert.ErrorIs(t, err, dbErr)
}
