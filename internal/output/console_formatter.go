package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/hullwhite/internal/domain"
)

// ConsoleFormatter renders a detailed plain-text report: model inputs, the
// single-path price, benchmarks and a sampled view of the rate path.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

// pathSamples is the number of rate observations printed per path.
const pathSamples = 11

func (c ConsoleFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HULL-WHITE ZERO-COUPON BOND PRICING")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	for _, r := range report.Results {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Scenario: %s\n", r.ScenarioName)
		if r.BondName != "" {
			fmt.Fprintf(&buf, "Bond:     %s\n", r.BondName)
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintf(&buf, "  Mean reversion (a):   %s\n", FormatFloat(r.Model.A, 4))
		fmt.Fprintf(&buf, "  Volatility (sigma):   %s\n", FormatFloat(r.Model.Sigma, 4))
		fmt.Fprintf(&buf, "  Initial rate (r0):    %s\n", FormatRate(r.Model.R0))
		fmt.Fprintf(&buf, "  Mean level (theta):   %s\n", FormatRate(r.Model.Theta))
		fmt.Fprintf(&buf, "  Maturity:             %s years\n", FormatFloat(r.Grid.T, 4))
		fmt.Fprintf(&buf, "  Steps:                %d (dt=%s)\n", r.Grid.Steps, FormatFloat(r.Grid.DT(), 6))
		fmt.Fprintf(&buf, "  Seed:                 %d\n", r.Seed)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  Discount factor:      %s\n", FormatFloat(r.DiscountFactor, 10))
		if r.Overflow {
			fmt.Fprintln(&buf, "  Present value:        n/a (discount factor overflowed)")
		} else {
			fmt.Fprintf(&buf, "  Present value:        %s of %s face\n", FormatCurrency(r.PresentValue), FormatCurrency(r.FaceValue))
		}
		if r.Analytic != nil {
			fmt.Fprintf(&buf, "  Closed-form price:    %s\n", FormatFloat(*r.Analytic, 10))
		}
		if mc := r.MonteCarlo; mc != nil {
			fmt.Fprintf(&buf, "  Monte Carlo mean:     %s (std error %s, %d paths)\n",
				FormatFloat(mc.Mean, 10), FormatFloat(mc.StdError, 10), mc.NumPaths)
			p := mc.PercentileRanges
			fmt.Fprintf(&buf, "  Percentiles:          P10=%s P50=%s P90=%s\n",
				FormatFloat(p.P10, 6), FormatFloat(p.P50, 6), FormatFloat(p.P90, 6))
		}
		if len(r.Path) > 0 {
			lo, hi := r.Path.MinMax()
			fmt.Fprintf(&buf, "  Rate range:           %s to %s\n", FormatRate(lo), FormatRate(hi))
			fmt.Fprintln(&buf, "  Rate path:")
			dt := r.Grid.DT()
			for _, i := range sampleIndexes(len(r.Path), pathSamples) {
				fmt.Fprintf(&buf, "    t=%8s  r=%s\n", FormatFloat(float64(i)*dt, 3), FormatRate(r.Path[i]))
			}
		}
	}
	return buf.Bytes(), nil
}

// ConsoleSummaryFormatter prints one line per scenario.
type ConsoleSummaryFormatter struct{}

func (c ConsoleSummaryFormatter) Name() string      { return "console-lite" }
func (c ConsoleSummaryFormatter) Extension() string { return "txt" }

func (c ConsoleSummaryFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BOND PRICING SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, r := range report.Results {
		pv := FormatCurrency(r.PresentValue)
		if r.Overflow {
			pv = "n/a"
		}
		fmt.Fprintf(&buf, "%s: DF=%s PV=%s", r.ScenarioName, FormatFloat(r.DiscountFactor, 8), pv)
		if r.MonteCarlo != nil {
			fmt.Fprintf(&buf, " MC=%s", FormatFloat(r.MonteCarlo.Mean, 8))
		}
		if r.Analytic != nil {
			fmt.Fprintf(&buf, " Analytic=%s", FormatFloat(*r.Analytic, 8))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}

// sampleIndexes picks up to k evenly spaced indexes of [0, n), always
// including the first and the last.
func sampleIndexes(n, k int) []int {
	if n <= 0 {
		return nil
	}
	if n <= k || k < 2 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, 0, k)
	for j := 0; j < k; j++ {
		idx = append(idx, j*(n-1)/(k-1))
	}
	return idx
}
