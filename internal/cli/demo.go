package cli

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/calclog/internal/calc"
	"github.com/ariel-frischer/calclog/internal/config"
	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/ariel-frischer/calclog/internal/output"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the calculator demonstration",
	Long: `Run a scripted demonstration of the calculator: basic operations,
advanced operations, and the accumulated operation history.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	calcCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	out := cmd.OutOrStdout()

	title := "CALCULATOR APPLICATION - DEMO"
	if cfg.Project != "" {
		title = strings.ToUpper(cfg.Project) + " - DEMO"
	}
	output.PrintBanner(out, title)
	fmt.Fprintln(out)

	basic := calc.New("BasicCalc")

	fmt.Fprintln(out, "Basic Operations:")
	output.PrintResult(out, "2 + 3", formatFloat(basic.Add(2, 3)))
	output.PrintResult(out, "10 - 4", formatFloat(basic.Subtract(10, 4)))
	output.PrintResult(out, "5 * 6", formatFloat(basic.Multiply(5, 6)))

	quotient, err := basic.Divide(20, 4)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	output.PrintResult(out, "20 / 4", formatFloat(quotient))
	output.PrintResult(out, "2 ^ 8", formatFloat(basic.Power(2, 8)))

	root, err := basic.Sqrt(16)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	output.PrintResult(out, "√16", formatFloat(root))
	fmt.Fprintln(out)

	advanced := calc.NewAdvanced("AdvancedCalc")

	fmt.Fprintln(out, "Advanced Operations:")
	output.PrintResult(out, "15% of 200", formatFloat(advanced.Percentage(200, 15)))

	fact, err := advanced.Factorial(5)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	output.PrintResult(out, "5!", fact.String())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Calculation History:")
	output.PrintHistory(out, basic.History())
	fmt.Fprintln(out)

	output.PrintSuccess(out, "Demo complete!")
	return nil
}
