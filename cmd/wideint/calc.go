package main

import (
	"strconv"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const calcOperators = "+ - * / % & | ^ << >> exp"

func (a *app) calcCommand() *cobra.Command {
	var mod string

	cmd := &cobra.Command{
		Use:   "calc <x> <op> <y>",
		Short: "Evaluate a binary operation",
		Long:  "Evaluate a binary operation, one of: " + calcOperators + ".\nThe exp operation requires --mod.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}

			var r result
			switch typ := a.v.GetString(keyType); typ {
			case "uint256":
				r, err = calc[wideint.U256](args[0], args[1], args[2], mod)
			case "int256":
				r, err = calc[wideint.I256](args[0], args[1], args[2], mod)
			case "uint512":
				r, err = calc[wideint.U512](args[0], args[1], args[2], mod)
			case "int512":
				r, err = calc[wideint.I512](args[0], args[1], args[2], mod)
			default:
				err = errors.Errorf("invalid %s %q", keyType, typ)
			}
			if err != nil {
				a.log.Error("Calculation failed", zap.Strings("args", args), zap.Error(err))
				return err
			}

			if format == "hex" {
				a.println(r.Hex())
			} else {
				a.println(r.String())
			}
			if r.Overflow() {
				a.log.Debug("Result overflows", zap.Int("bits", r.Bits()))
				a.println("overflow")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mod, "mod", "", "modulus of the exp operation")

	return cmd
}

// result is the type independent view of a calculation result.
type result interface {
	String() string
	Hex() string
	Overflow() bool
	Bits() int
}

func calc[K wideint.Kind](xs, op, ys, ms string) (result, error) {
	x, err := parseOperand[K](xs)
	if err != nil {
		return nil, err
	}

	z := new(wideint.Int[K])

	switch op {
	case "<<", ">>":
		n, err := strconv.ParseUint(ys, 10, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid shift count %q", ys)
		}
		if op == "<<" {
			return z.Lsh(x, uint(n)), nil
		}
		return z.Rsh(x, uint(n)), nil
	}

	y, err := parseOperand[K](ys)
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		z.Add(x, y)
	case "-":
		z.Sub(x, y)
	case "*":
		z.Mul(x, y)
	case "/", "%":
		if y.IsZero() {
			return nil, errors.New("division by zero")
		}
		if op == "/" {
			z.Div(x, y)
		} else {
			z.Mod(x, y)
		}
	case "&":
		z.And(x, y)
	case "|":
		z.Or(x, y)
	case "^":
		z.Xor(x, y)
	case "exp":
		if ms == "" {
			return nil, errors.New("exp requires --mod")
		}
		m, err := parseOperand[K](ms)
		if err != nil {
			return nil, err
		}
		if m.IsZero() {
			return nil, errors.New("zero modulus")
		}
		if y.IsNegative() {
			return nil, errors.New("negative exponent")
		}
		z.Exp(x, y, m)
	default:
		return nil, errors.Errorf("unknown operator %q, expected one of: %s", op, calcOperators)
	}
	return z, nil
}

func parseOperand[K wideint.Kind](s string) (*wideint.Int[K], error) {
	x, err := wideint.Parse[K](s)
	if err != nil {
		return nil, err
	}
	if x.Overflow() {
		return nil, errors.Errorf("%s overflows %d bits", s, x.Bits())
	}
	return x, nil
}
