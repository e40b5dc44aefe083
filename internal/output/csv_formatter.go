package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/hullwhite/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PricingReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Bond", "A", "Sigma", "R0", "Theta", "Maturity", "Steps", "Seed",
		"FaceValue", "DiscountFactor", "PresentValue", "Overflow", "MonteCarloMean", "MonteCarloStdError", "MonteCarloPaths", "Analytic"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range report.Results {
		mcMean, mcErr, mcPaths := "", "", ""
		if r.MonteCarlo != nil {
			mcMean = FormatFloat(r.MonteCarlo.Mean, 10)
			mcErr = FormatFloat(r.MonteCarlo.StdError, 10)
			mcPaths = intToString(r.MonteCarlo.NumPaths)
		}
		analytic := ""
		if r.Analytic != nil {
			analytic = FormatFloat(*r.Analytic, 10)
		}
		row := []string{
			r.ScenarioName,
			r.BondName,
			FormatFloat(r.Model.A, -1),
			FormatFloat(r.Model.Sigma, -1),
			FormatFloat(r.Model.R0, -1),
			FormatFloat(r.Model.Theta, -1),
			FormatFloat(r.Grid.T, -1),
			intToString(r.Grid.Steps),
			strconv.FormatInt(r.Seed, 10),
			r.FaceValue.StringFixed(2),
			FormatFloat(r.DiscountFactor, 10),
			r.PresentValue.StringFixed(2),
			boolToString(r.Overflow),
			mcMean,
			mcErr,
			mcPaths,
			analytic,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVPathExporter writes every rate observation of every kept path.
type CSVPathExporter struct{}

func (c CSVPathExporter) Name() string      { return "path-csv" }
func (c CSVPathExporter) Extension() string { return "csv" }

func (c CSVPathExporter) Format(report *domain.PricingReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Step", "Time", "Rate"}); err != nil {
		return nil, err
	}
	for _, r := range report.Results {
		for i, rate := range r.Path {
			row := []string{
				r.ScenarioName,
				intToString(i),
				FormatFloat(float64(i)*r.Grid.T/float64(r.Grid.Steps), -1),
				FormatFloat(rate, -1),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
