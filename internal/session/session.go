// Package session implements the interactive calculation loop: select an
// operation, read its operands, evaluate, display, then ask whether to
// continue. Each iteration is stateless relative to prior ones; faults are
// contained to the iteration they occur in.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hiraku/calq/internal/calc"
	"github.com/hiraku/calq/internal/log"
)

const separatorWidth = 40

// Session drives the calculation loop over a line-oriented reader/writer
// pair. Reader and writer are injected so tests can run a full session
// against in-memory buffers.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// New creates a session reading line-oriented input from in and writing all
// prompts and results to out.
func New(in io.Reader, out io.Writer, styles Styles) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}
}

// Run executes the session until the user declines to continue or the input
// stream closes. A closed input stream ends the session cleanly; it is not
// surfaced as an error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, s.styles.Banner.Render("calq — interactive calculator"))
	fmt.Fprintln(s.out, "Type 'help' to list the available operations.")

	for {
		op, err := s.selectOperation()
		if err != nil {
			return s.finish(err)
		}

		if err := s.runCalculation(op); err != nil {
			return s.finish(err)
		}

		again, err := s.askContinue()
		if err != nil {
			return s.finish(err)
		}
		if !again {
			break
		}
	}

	fmt.Fprintln(s.out, "Goodbye!")
	return nil
}

// finish maps end-of-input to a clean termination.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("input stream closed, ending session")
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Goodbye!")
		return nil
	}
	return err
}

// selectOperation prompts until the user enters a valid operation token.
// The "help" token prints the operation guide and keeps prompting; it never
// leaves this state.
func (s *Session) selectOperation() (calc.Op, error) {
	for {
		s.prompt("Select an operation (or 'help')")

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		token := strings.ToLower(strings.TrimSpace(line))
		if token == "" {
			s.errorln("please enter an operation")
			continue
		}
		if token == "help" {
			fmt.Fprintln(s.out, HelpTable(s.styles))
			continue
		}

		op, err := calc.ParseOp(token)
		if err != nil {
			s.errorln(fmt.Sprintf("unknown operation %q; valid operations: %s",
				token, strings.Join(calc.Tokens(), ", ")))
			continue
		}
		return op, nil
	}
}

// runCalculation reads the operands for op, evaluates, and prints the result
// line. Domain errors print their reason and suppress the result line. Any
// panic raised during the iteration is contained here so the loop can
// proceed to the continue prompt.
func (s *Session) runCalculation(op calc.Op) (err error) {
	defer func() {
		if r := recover(); r == nil {
			return
		} else if _, ok := r.(*strconv.NumError); ok {
			s.errorln("please enter valid numbers only")
		} else {
			s.errorln(fmt.Sprint(r))
		}
	}()

	operands, err := s.readOperands(op)
	if err != nil {
		return err
	}

	result, evalErr := calc.Evaluate(op, operands...)
	if evalErr != nil {
		var domainErr *calc.DomainError
		if errors.As(evalErr, &domainErr) {
			log.Debug("domain error", "operation", op.String(), "reason", domainErr.Reason)
		}
		s.errorln(evalErr.Error())
		return nil
	}

	fmt.Fprintln(s.out, s.styles.Result.Render(FormatCalculation(op, operands, result)))
	return nil
}

// readOperands prompts for each of the operation's operands in order,
// re-prompting the same field until it parses as a float.
func (s *Session) readOperands(op calc.Op) ([]float64, error) {
	operands := make([]float64, 0, op.Arity())
	for _, promptText := range op.Prompts() {
		for {
			s.prompt(promptText)

			line, err := s.readLine()
			if err != nil {
				return nil, err
			}

			value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
			if err != nil {
				s.errorln("invalid number format")
				continue
			}
			operands = append(operands, value)
			break
		}
	}
	return operands, nil
}

// askContinue prompts until the user answers yes or no. Empty input and
// unrecognized answers re-prompt; they do not count as declining.
func (s *Session) askContinue() (bool, error) {
	for {
		s.prompt("Do you want to perform another calculation? (yes/no)")

		line, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			fmt.Fprintln(s.out, s.styles.Separator.Render(strings.Repeat("─", separatorWidth)))
			return true, nil
		case "no", "n":
			return false, nil
		default:
			s.errorln("please answer yes or no")
		}
	}
}

func (s *Session) prompt(text string) {
	fmt.Fprintf(s.out, "%s: ", s.styles.Prompt.Render(text))
}

func (s *Session) errorln(text string) {
	fmt.Fprintln(s.out, s.styles.Error.Render(text))
}

func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
