package session

import (
	"bytes"
	"strings"
	"testing"
)

// runSession feeds input to a full session with plain styles and returns
// everything it wrote.
func runSession(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	sess := New(strings.NewReader(input), &out, PlainStyles())
	if err := sess.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestAddition(t *testing.T) {
	out := runSession(t, "+\n2\n3\nno\n")

	if !strings.Contains(out, "2 + 3 = 5") {
		t.Errorf("output missing result line, got:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output missing closing message, got:\n%s", out)
	}
}

func TestSqrtNegativeSuppressesResult(t *testing.T) {
	out := runSession(t, "sqrt\n-1\nno\n")

	if !strings.Contains(out, "cannot take the square root of a negative number") {
		t.Errorf("output missing domain error, got:\n%s", out)
	}
	if strings.Contains(out, "= ") {
		t.Errorf("domain error must suppress the result line, got:\n%s", out)
	}
}

func TestInvalidOperandReprompts(t *testing.T) {
	out := runSession(t, "sqrt\nabc\n4\nno\n")

	if !strings.Contains(out, "invalid number format") {
		t.Errorf("output missing re-prompt message, got:\n%s", out)
	}
	if !strings.Contains(out, "sqrt(4) = 2") {
		t.Errorf("output missing result after re-prompt, got:\n%s", out)
	}
}

func TestEmptyOperationReprompts(t *testing.T) {
	out := runSession(t, "\n+\n1\n2\nno\n")

	if !strings.Contains(out, "please enter an operation") {
		t.Errorf("output missing empty-input message, got:\n%s", out)
	}
	if !strings.Contains(out, "1 + 2 = 3") {
		t.Errorf("output missing result, got:\n%s", out)
	}
}

func TestUnknownOperationListsValidOps(t *testing.T) {
	out := runSession(t, "cube\n+\n1\n2\nno\n")

	if !strings.Contains(out, `unknown operation "cube"`) {
		t.Errorf("output missing unknown-operation message, got:\n%s", out)
	}
	// The re-prompt message lists the whole operation set.
	for _, token := range []string{"sin", "sqrt", "log10", "pow"} {
		if !strings.Contains(out, token) {
			t.Errorf("valid-operation list missing %q, got:\n%s", token, out)
		}
	}
}

func TestHelpSkipsContinuePrompt(t *testing.T) {
	out := runSession(t, "help\n+\n1\n1\nno\n")

	if !strings.Contains(out, "Available operations") {
		t.Errorf("output missing help table, got:\n%s", out)
	}
	if !strings.Contains(out, "1 + 1 = 2") {
		t.Errorf("output missing result after help, got:\n%s", out)
	}
	// Help loops straight back to operation selection; only the real
	// calculation triggers the continue prompt.
	if got := strings.Count(out, "another calculation"); got != 1 {
		t.Errorf("continue prompt shown %d times, want 1; output:\n%s", got, out)
	}
}

func TestContinueLoopsWithSeparator(t *testing.T) {
	out := runSession(t, "+\n1\n1\nyes\n-\n5\n2\nno\n")

	if !strings.Contains(out, "1 + 1 = 2") || !strings.Contains(out, "5 - 2 = 3") {
		t.Errorf("output missing one of the results, got:\n%s", out)
	}
	if !strings.Contains(out, "────") {
		t.Errorf("output missing separator between iterations, got:\n%s", out)
	}
}

func TestContinueRepromptsOnGarbage(t *testing.T) {
	out := runSession(t, "+\n1\n1\nmaybe\n\nno\n")

	if got := strings.Count(out, "please answer yes or no"); got != 2 {
		t.Errorf("yes/no re-prompt shown %d times, want 2; output:\n%s", got, out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output missing closing message, got:\n%s", out)
	}
}

func TestInputStreamClosingEndsCleanly(t *testing.T) {
	// Stream ends mid-operand; the session must terminate without error.
	out := runSession(t, "+\n2\n")

	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output missing closing message after EOF, got:\n%s", out)
	}
}

func TestModuloByZero(t *testing.T) {
	out := runSession(t, "%\n5\n0\nno\n")

	if !strings.Contains(out, "cannot modulo by zero") {
		t.Errorf("output missing domain error, got:\n%s", out)
	}
}

func TestLogPromptsBaseFirst(t *testing.T) {
	out := runSession(t, "log\n2\n8\nno\n")

	baseIdx := strings.Index(out, "Enter the base")
	numberIdx := strings.Index(out, "Enter the number")
	if baseIdx < 0 || numberIdx < 0 || baseIdx > numberIdx {
		t.Errorf("log must prompt for the base before the number, got:\n%s", out)
	}
	if !strings.Contains(out, "log(2, 8) = 3") {
		t.Errorf("output missing result line, got:\n%s", out)
	}
}

func TestPowPromptsAndResult(t *testing.T) {
	out := runSession(t, "pow\n2\n10\nno\n")

	if !strings.Contains(out, "Enter the exponent") {
		t.Errorf("output missing exponent prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "pow(2, 10) = 1024") {
		t.Errorf("output missing result line, got:\n%s", out)
	}
}

func TestTangentUndefined(t *testing.T) {
	out := runSession(t, "tan\n90\nno\n")

	if !strings.Contains(out, "tangent is undefined") {
		t.Errorf("output missing domain error, got:\n%s", out)
	}
	if strings.Contains(out, "= ") {
		t.Errorf("domain error must suppress the result line, got:\n%s", out)
	}
}

func TestCaseInsensitiveInputs(t *testing.T) {
	out := runSession(t, "SQRT\n9\nYES\nSIN\n30\nNO\n")

	if !strings.Contains(out, "sqrt(9) = 3") {
		t.Errorf("output missing sqrt result, got:\n%s", out)
	}
	if !strings.Contains(out, "sin(30) = 0.5") {
		t.Errorf("output missing sin result, got:\n%s", out)
	}
}

func TestFormatCalculation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"scientific result", "pow\n10\n13\nno\n", "pow(10, 13) = 1.000000E+13"},
		{"near-zero result collapses", "sin\n180\nno\n", "sin(180) = 0"},
		{"modulo infix", "%\n7\n3\nno\n", "7 % 3 = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, tt.input)
			if !strings.Contains(out, tt.expected) {
				t.Errorf("output missing %q, got:\n%s", tt.expected, out)
			}
		})
	}
}
