package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-tracker/generic"
)

// Advisory messages printed on rejected input.
const (
	MsgInvalidPositive = "Invalid input! Please enter a positive number."
	MsgInvalidNumber   = "Invalid input! Please enter a number."
	MsgInvalidChoice   = "Invalid choice! Try again."
	MsgDuplicateID     = "Duplicate ID! Enter a unique ID."
)

// ErrInputClosed is returned when stdin reaches end of file. It is the only
// way out of a retry loop other than valid input.
var ErrInputClosed = errors.New("input closed")

// Reader prompts on out and reads tokens and lines from in.
//
// Every numeric read discards the rest of its line, valid or not, so a
// following ReadLine starts on a fresh line.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

func NewReader(in io.Reader, out io.Writer, log zerolog.Logger) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// ReadPositiveInt prompts until the user enters an integer > 0.
func (r *Reader) ReadPositiveInt(prompt string) (int, error) {
	for {
		n, err := readValue(r, prompt, parsePositiveInt)
		if err == nil {
			return n, nil
		}
		if !generic.IsInputError(err) {
			return 0, err
		}
		r.reject(err, MsgInvalidPositive)
	}
}

// ReadPositiveDecimal prompts until the user enters a real number > 0.
func (r *Reader) ReadPositiveDecimal(prompt string) (decimal.Decimal, error) {
	for {
		d, err := readValue(r, prompt, parsePositiveDecimal)
		if err == nil {
			return d, nil
		}
		if !generic.IsInputError(err) {
			return decimal.Zero, err
		}
		r.reject(err, MsgInvalidPositive)
	}
}

// ReadInt prompts once and reads one integer token. It does not retry: a
// bad token comes back as a *generic.InputError and the caller decides how
// to recover.
func (r *Reader) ReadInt(prompt string) (int, error) {
	return readValue(r, prompt, parseInt)
}

// ReadLine prompts once and returns the next line without its line break.
// Empty lines are accepted.
func (r *Reader) ReadLine(prompt string) (string, error) {
	r.print(prompt)
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", r.wrapReadErr(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println writes one line of output.
func (r *Reader) Println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Reader) print(s string) {
	fmt.Fprint(r.out, s)
}

func (r *Reader) reject(err error, msg string) {
	r.log.Debug().Err(err).Msg("input rejected")
	r.Println(msg)
}

// readValue prompts, reads one token, discards the rest of the line and
// parses the token.
func readValue[T any](r *Reader, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	r.print(prompt)
	tok, err := r.readToken()
	if err != nil {
		return zero, err
	}
	if err := r.discardLine(); err != nil && !errors.Is(err, ErrInputClosed) {
		return zero, err
	}
	return parse(tok)
}

// readToken skips leading whitespace, line breaks included, and returns the
// next run of non-space characters. The delimiter is left unread.
func (r *Reader) readToken() (string, error) {
	var sb strings.Builder
	for {
		c, _, err := r.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", r.wrapReadErr(err)
		}
		if unicode.IsSpace(c) {
			if sb.Len() == 0 {
				continue
			}
			if err := r.in.UnreadRune(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}

// discardLine consumes input up to and including the next line break.
func (r *Reader) discardLine() error {
	_, err := r.in.ReadString('\n')
	if err != nil {
		return r.wrapReadErr(err)
	}
	return nil
}

func (r *Reader) wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return fmt.Errorf("read input: %w", err)
}

// =============================================================================
// TOKEN PARSERS
// =============================================================================

func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &generic.InputError{Token: tok, Err: generic.ErrInvalidNumber}
	}
	return n, nil
}

func parsePositiveInt(tok string) (int, error) {
	n, err := parseInt(tok)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &generic.InputError{Token: tok, Err: generic.ErrNotPositive}
	}
	return n, nil
}

func parsePositiveDecimal(tok string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, &generic.InputError{Token: tok, Err: generic.ErrInvalidNumber}
	}
	if !d.IsPositive() {
		return decimal.Zero, &generic.InputError{Token: tok, Err: generic.ErrNotPositive}
	}
	if !fitsFloat64(d) {
		return decimal.Zero, &generic.InputError{Token: tok, Err: generic.ErrInvalidNumber}
	}
	return d, nil
}

// Decimal magnitudes a float64 can hold without overflowing or flushing to
// zero.
const (
	maxMagnitude = 309
	minMagnitude = -324
)

// fitsFloat64 reports whether d neither overflows nor flushes to zero as a
// float64. The exponent is bounded before converting.
func fitsFloat64(d decimal.Decimal) bool {
	magnitude := int64(d.Exponent()) + int64(len(d.Coefficient().String()))
	if magnitude > maxMagnitude || magnitude < minMagnitude {
		return false
	}
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && f != 0
}
