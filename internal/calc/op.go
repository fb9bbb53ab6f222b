package calc

import "strings"

// Op identifies one of the fixed calculator operations.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpSin
	OpCos
	OpTan
	OpPow
	OpSqrt
	OpLog
	OpLn
	OpLog10
)

// opInfo is one row of the fixed operation table: the input token, how many
// operands the operation takes, the prompt shown for each operand, and the
// one-line description used by the help table.
type opInfo struct {
	token   string
	arity   int
	prompts [2]string
	desc    string
}

var opTable = [...]opInfo{
	OpAdd:   {"+", 2, [2]string{"Enter the first number", "Enter the second number"}, "add two numbers"},
	OpSub:   {"-", 2, [2]string{"Enter the first number", "Enter the second number"}, "subtract the second number from the first"},
	OpMul:   {"*", 2, [2]string{"Enter the first number", "Enter the second number"}, "multiply two numbers"},
	OpDiv:   {"/", 2, [2]string{"Enter the first number", "Enter the second number"}, "divide the first number by the second"},
	OpMod:   {"%", 2, [2]string{"Enter the first number", "Enter the second number"}, "remainder of dividing the first number by the second"},
	OpSin:   {"sin", 1, [2]string{"Enter a number"}, "sine of an angle in degrees"},
	OpCos:   {"cos", 1, [2]string{"Enter a number"}, "cosine of an angle in degrees"},
	OpTan:   {"tan", 1, [2]string{"Enter a number"}, "tangent of an angle in degrees"},
	OpPow:   {"pow", 2, [2]string{"Enter the base", "Enter the exponent"}, "raise a base to an exponent"},
	OpSqrt:  {"sqrt", 1, [2]string{"Enter a number"}, "square root of a number"},
	OpLog:   {"log", 2, [2]string{"Enter the base", "Enter the number"}, "logarithm with a custom base"},
	OpLn:    {"ln", 1, [2]string{"Enter a number"}, "natural logarithm"},
	OpLog10: {"log10", 1, [2]string{"Enter a number"}, "base-10 logarithm"},
}

// String returns the operation's input token.
func (op Op) String() string {
	return opTable[op].token
}

// Arity returns how many operands the operation takes (1 or 2).
func (op Op) Arity() int {
	return opTable[op].arity
}

// Prompts returns the per-operand prompt texts, in entry order.
func (op Op) Prompts() []string {
	return opTable[op].prompts[:op.Arity()]
}

// Description returns the one-line help text for the operation.
func (op Op) Description() string {
	return opTable[op].desc
}

// Ops returns all operations in display order.
func Ops() []Op {
	ops := make([]Op, len(opTable))
	for i := range opTable {
		ops[i] = Op(i)
	}
	return ops
}

// Tokens returns the input tokens of all operations, in display order.
func Tokens() []string {
	tokens := make([]string, len(opTable))
	for i, info := range opTable {
		tokens[i] = info.token
	}
	return tokens
}

// ParseOp resolves a user-entered token to an operation. Matching is exact
// after trimming and case-folding. Unknown tokens return ErrUnknownOp.
func ParseOp(token string) (Op, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for i, info := range opTable {
		if info.token == token {
			return Op(i), nil
		}
	}
	return 0, ErrUnknownOp
}
