package cli

import (
	"fmt"
	"strconv"

	"github.com/ariel-frischer/calclog/internal/calc"
	"github.com/ariel-frischer/calclog/internal/config"
	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/spf13/cobra"
)

var calcShowHistory bool

var calcCmd = &cobra.Command{
	Use:   "calc <operation> [args...]",
	Short: "Run a calculator operation",
	Long: `Run a single calculator operation and print the result.

Operations:
  add <a> <b>       Add two numbers
  sub <a> <b>       Subtract b from a
  mul <a> <b>       Multiply two numbers
  div <a> <b>       Divide a by b
  pow <base> <exp>  Raise base to the power of exp
  sqrt <x>          Square root of x
  pct <n> <p>       p percent of n
  fact <n>          Factorial of a non-negative integer

Examples:
  calclog calc add 2 3
  calclog calc div 10 4
  calclog calc fact 5
  calclog calc sqrt 16 --history`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().BoolVar(&calcShowHistory, "history", false, "Print the operation history record after the result")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	engine := calc.NewAdvanced(cfg.CalcName)

	result, err := evalOperation(engine, args[0], args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result)

	if calcShowHistory {
		for _, entry := range engine.History() {
			fmt.Fprintln(out, entry)
		}
	}

	return nil
}

// evalOperation dispatches one operation and returns the printable result.
func evalOperation(engine *calc.Advanced, op string, args []string) (string, error) {
	switch op {
	case "add":
		a, b, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		return formatFloat(engine.Add(a, b)), nil

	case "sub":
		a, b, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		return formatFloat(engine.Subtract(a, b)), nil

	case "mul":
		a, b, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		return formatFloat(engine.Multiply(a, b)), nil

	case "div":
		a, b, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		result, err := engine.Divide(a, b)
		if err != nil {
			return "", errors.Wrap(err, errors.Argument)
		}
		return formatFloat(result), nil

	case "pow":
		base, exp, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		return formatFloat(engine.Power(base, exp)), nil

	case "sqrt":
		x, err := oneFloat(op, args)
		if err != nil {
			return "", err
		}
		result, err := engine.Sqrt(x)
		if err != nil {
			return "", errors.Wrap(err, errors.Argument)
		}
		return formatFloat(result), nil

	case "pct":
		number, percent, err := twoFloats(op, args)
		if err != nil {
			return "", err
		}
		return formatFloat(engine.Percentage(number, percent)), nil

	case "fact":
		n, err := oneInt(op, args)
		if err != nil {
			return "", err
		}
		result, err := engine.Factorial(n)
		if err != nil {
			return "", errors.Wrap(err, errors.Argument)
		}
		return result.String(), nil

	default:
		return "", errors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown operation %q", op),
			"calclog calc <operation> [args...]",
			"run 'calclog calc --help' for the list of operations",
		)
	}
}

// twoFloats parses exactly two numeric arguments.
func twoFloats(op string, args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, arityError(op, 2, len(args))
	}
	a, err := parseFloat(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseFloat(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// oneFloat parses exactly one numeric argument.
func oneFloat(op string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, arityError(op, 1, len(args))
	}
	return parseFloat(args[0])
}

// oneInt parses exactly one integer argument. Non-integer input is an
// argument error, matching the factorial precondition.
func oneInt(op string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, arityError(op, 1, len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.NewArgumentError(
			"factorial requires an integer",
			fmt.Sprintf("got %q; pass a whole number like 'calclog calc %s 5'", args[0], op),
		)
	}
	return n, nil
}

func arityError(op string, want, got int) error {
	return errors.NewArgumentErrorWithUsage(
		fmt.Sprintf("operation %q takes %d argument(s), got %d", op, want, got),
		fmt.Sprintf("calclog calc %s ...", op),
	)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewArgumentError(fmt.Sprintf("invalid number %q", s))
	}
	return v, nil
}

// formatFloat renders results the same way history records do.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
