/*
Package console implements the interactive payroll menu.

PURPOSE:
  Reads menu choices and employee fields from a text stream, keeps the
  results in a generic.Store and prints the payroll report on demand.

STATE MACHINE:
  AwaitingChoice --1/2/3--> CreatingEmployee(kind) --> AwaitingChoice
  AwaitingChoice --4------> Reporting              --> AwaitingChoice
  AwaitingChoice --5------> Terminated
  AwaitingChoice --other--> AwaitingChoice ("Invalid choice! Try again.")
  AwaitingChoice --NaN----> AwaitingChoice ("Invalid input! Please enter a number.")

  End of input at any prompt also leads to Terminated. A creation flow cut
  short that way appends nothing.

INPUT DISCIPLINE:
  Every numeric read (menu choice included) consumes its token and the rest
  of that line. The name prompt then reads exactly one line. Keeping this
  discipline is what stops the name read from swallowing a leftover empty
  line.

SEE ALSO:
  - reader.go: Token and line reads, retry loops
  - flows.go: Per-kind creation flows
  - report.go: Report rendering
*/
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/payroll"
)

// =============================================================================
// STATES AND CHOICES
// =============================================================================

type State int

const (
	StateAwaitingChoice State = iota
	StateCreatingEmployee
	StateReporting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateCreatingEmployee:
		return "creating_employee"
	case StateReporting:
		return "reporting"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

const (
	ChoiceFullTime    = 1
	ChoicePartTime    = 2
	ChoiceContractual = 3
	ChoiceReport      = 4
	ChoiceExit        = 5
)

const PromptChoice = "Enter choice: "

// Transition maps a menu choice to the next state. For creation choices it
// also returns the kind to create. ok is false for out-of-range choices.
func Transition(choice int) (next State, kind payroll.Kind, ok bool) {
	switch choice {
	case ChoiceFullTime, ChoicePartTime, ChoiceContractual:
		return StateCreatingEmployee, payroll.Kinds[choice-ChoiceFullTime], true
	case ChoiceReport:
		return StateReporting, "", true
	case ChoiceExit:
		return StateTerminated, "", true
	}
	return StateAwaitingChoice, "", false
}

// MenuText renders the menu shown before each choice prompt.
func MenuText() string {
	var sb strings.Builder
	sb.WriteString("\nMenu\n")
	for i, k := range payroll.Kinds {
		sb.WriteString(strconv.Itoa(ChoiceFullTime+i) + " - " + k.Label() + "\n")
	}
	sb.WriteString(strconv.Itoa(ChoiceReport) + " - Display Payroll Report\n")
	sb.WriteString(strconv.Itoa(ChoiceExit) + " - Exit\n")
	return sb.String()
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns the store for one run of the menu loop.
type Session struct {
	store generic.Store
	in    *Reader
	out   io.Writer
	log   zerolog.Logger
	opts  ReportOptions
}

func NewSession(store generic.Store, in io.Reader, out io.Writer, log zerolog.Logger, opts ReportOptions) *Session {
	return &Session{
		store: store,
		in:    NewReader(in, out, log),
		out:   out,
		log:   log,
		opts:  opts,
	}
}

// Run drives the menu until the user exits or input ends. It returns nil in
// both cases; only store failures are reported as errors. The caller
// closes the store.
func (s *Session) Run(ctx context.Context) error {
	state := StateAwaitingChoice
	var kind payroll.Kind

	for state != StateTerminated {
		var err error
		switch state {
		case StateAwaitingChoice:
			state, kind, err = s.awaitChoice()
		case StateCreatingEmployee:
			err = s.createEmployee(ctx, kind)
			state = StateAwaitingChoice
		case StateReporting:
			err = s.report(ctx)
			state = StateAwaitingChoice
		}

		if errors.Is(err, ErrInputClosed) {
			s.log.Info().Msg("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
	}

	s.log.Info().Msg("session terminated")
	return nil
}

func (s *Session) awaitChoice() (State, payroll.Kind, error) {
	fmt.Fprint(s.out, MenuText())

	choice, err := s.in.ReadInt(PromptChoice)
	if generic.IsInputError(err) {
		s.in.reject(err, MsgInvalidNumber)
		return StateAwaitingChoice, "", nil
	}
	if err != nil {
		return StateAwaitingChoice, "", err
	}

	next, kind, ok := Transition(choice)
	if !ok {
		s.in.reject(&generic.InputError{Token: strconv.Itoa(choice), Err: generic.ErrInvalidChoice}, MsgInvalidChoice)
	}
	return next, kind, nil
}

func (s *Session) report(ctx context.Context) error {
	employees, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	s.log.Debug().Int("employees", len(employees)).Msg("report printed")
	return WriteReport(s.out, employees, s.opts)
}
