package calc

import (
	"fmt"
	"math"
)

// Tolerance is the threshold below which a magnitude is treated as
// effectively zero. It applies to divisor and modulus checks, the
// cosine-near-zero check for tangent, and the log-base-equals-one check.
const Tolerance = 1e-10

// Evaluate applies the operation to its operands and returns the numeric
// result. Mathematically undefined inputs return a *DomainError; the caller
// decides how to surface it. Evaluate has no other side effects.
func Evaluate(op Op, operands ...float64) (float64, error) {
	if len(operands) != op.Arity() {
		return 0, fmt.Errorf("%s expects %d operand(s), got %d", op, op.Arity(), len(operands))
	}

	switch op {
	case OpAdd:
		return operands[0] + operands[1], nil
	case OpSub:
		return operands[0] - operands[1], nil
	case OpMul:
		return operands[0] * operands[1], nil
	case OpDiv:
		if math.Abs(operands[1]) < Tolerance {
			return 0, domainErr(op, "cannot divide by zero")
		}
		return operands[0] / operands[1], nil
	case OpMod:
		if math.Abs(operands[1]) < Tolerance {
			return 0, domainErr(op, "cannot modulo by zero")
		}
		return math.Mod(operands[0], operands[1]), nil
	case OpSin:
		return math.Sin(degreesToRadians(NormalizeDegrees(operands[0]))), nil
	case OpCos:
		return math.Cos(degreesToRadians(NormalizeDegrees(operands[0]))), nil
	case OpTan:
		radians := degreesToRadians(NormalizeDegrees(operands[0]))
		if math.Abs(math.Cos(radians)) < Tolerance {
			return 0, domainErr(op, "tangent is undefined for this angle")
		}
		return math.Tan(radians), nil
	case OpPow:
		base, exponent := operands[0], operands[1]
		if exponent == 0 {
			return 1, nil
		}
		if base == 0 && exponent < 0 {
			return 0, domainErr(op, "0 raised to a negative power is undefined")
		}
		// Negative base with fractional exponent yields NaN from math.Pow;
		// that passes through unchecked.
		return math.Pow(base, exponent), nil
	case OpSqrt:
		if operands[0] < 0 {
			return 0, domainErr(op, "cannot take the square root of a negative number")
		}
		return math.Sqrt(operands[0]), nil
	case OpLog:
		base, number := operands[0], operands[1]
		if base <= 0 || math.Abs(base-1) < Tolerance {
			return 0, domainErr(op, "log base must be positive and not 1")
		}
		if number <= 0 {
			return 0, domainErr(op, "number must be positive")
		}
		return math.Log(number) / math.Log(base), nil
	case OpLn:
		if operands[0] <= 0 {
			return 0, domainErr(op, "number must be positive")
		}
		return math.Log(operands[0]), nil
	case OpLog10:
		if operands[0] <= 0 {
			return 0, domainErr(op, "number must be positive")
		}
		return math.Log10(operands[0]), nil
	}
	return 0, fmt.Errorf("unhandled operation %q", op)
}

// NormalizeDegrees folds an angle into [0, 360) regardless of sign.
func NormalizeDegrees(degrees float64) float64 {
	return math.Mod(math.Mod(degrees, 360)+360, 360)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
