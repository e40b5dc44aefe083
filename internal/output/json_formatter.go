package output

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/rpgo/hullwhite/internal/domain"
	"github.com/shopspring/decimal"
)

// JSONFormatter serializes the pricing report as pretty-printed JSON.
// Non-finite numbers (an overflowed discount factor) are written as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	doc := jsonReport{GeneratedAt: report.GeneratedAt, Results: make([]jsonResult, 0, len(report.Results))}
	for _, r := range report.Results {
		doc.Results = append(doc.Results, newJSONResult(r))
	}
	return json.MarshalIndent(doc, "", "  ")
}

// jsonFloat marshals NaN and infinities as null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type jsonReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Results     []jsonResult `json:"results"`
}

type jsonModel struct {
	A     jsonFloat `json:"a"`
	Sigma jsonFloat `json:"sigma"`
	R0    jsonFloat `json:"r0"`
	Theta jsonFloat `json:"theta"`
}

type jsonGrid struct {
	T     jsonFloat `json:"t"`
	Steps int       `json:"steps"`
	DT    jsonFloat `json:"dt"`
}

type jsonPercentiles struct {
	P10 jsonFloat `json:"p10"`
	P25 jsonFloat `json:"p25"`
	P50 jsonFloat `json:"p50"`
	P75 jsonFloat `json:"p75"`
	P90 jsonFloat `json:"p90"`
}

type jsonMonteCarlo struct {
	NumPaths    int             `json:"num_paths"`
	Seed        int64           `json:"seed"`
	Mean        jsonFloat       `json:"mean"`
	StdDev      jsonFloat       `json:"std_dev"`
	StdError    jsonFloat       `json:"std_error"`
	Percentiles jsonPercentiles `json:"percentiles"`
}

type jsonResult struct {
	ScenarioName   string          `json:"scenario_name"`
	BondName       string          `json:"bond_name,omitempty"`
	Model          jsonModel       `json:"model"`
	Grid           jsonGrid        `json:"grid"`
	Seed           int64           `json:"seed"`
	FaceValue      decimal.Decimal `json:"face_value"`
	DiscountFactor jsonFloat       `json:"discount_factor"`
	PresentValue   decimal.Decimal `json:"present_value"`
	Overflow       bool            `json:"overflow"`
	Analytic       *jsonFloat      `json:"analytic,omitempty"`
	MonteCarlo     *jsonMonteCarlo `json:"monte_carlo,omitempty"`
	Path           []jsonFloat     `json:"path,omitempty"`
}

func newJSONResult(r domain.PricingResult) jsonResult {
	out := jsonResult{
		ScenarioName: r.ScenarioName,
		BondName:     r.BondName,
		Model: jsonModel{
			A:     jsonFloat(r.Model.A),
			Sigma: jsonFloat(r.Model.Sigma),
			R0:    jsonFloat(r.Model.R0),
			Theta: jsonFloat(r.Model.Theta),
		},
		Grid:           jsonGrid{T: jsonFloat(r.Grid.T), Steps: r.Grid.Steps, DT: jsonFloat(r.Grid.DT())},
		Seed:           r.Seed,
		FaceValue:      r.FaceValue,
		DiscountFactor: jsonFloat(r.DiscountFactor),
		PresentValue:   r.PresentValue,
		Overflow:       r.Overflow,
	}
	if r.Analytic != nil {
		a := jsonFloat(*r.Analytic)
		out.Analytic = &a
	}
	if mc := r.MonteCarlo; mc != nil {
		p := mc.PercentileRanges
		out.MonteCarlo = &jsonMonteCarlo{
			NumPaths: mc.NumPaths,
			Seed:     mc.Seed,
			Mean:     jsonFloat(mc.Mean),
			StdDev:   jsonFloat(mc.StdDev),
			StdError: jsonFloat(mc.StdError),
			Percentiles: jsonPercentiles{
				P10: jsonFloat(p.P10), P25: jsonFloat(p.P25), P50: jsonFloat(p.P50),
				P75: jsonFloat(p.P75), P90: jsonFloat(p.P90),
			},
		}
	}
	if len(r.Path) > 0 {
		out.Path = make([]jsonFloat, len(r.Path))
		for i, v := range r.Path {
			out.Path[i] = jsonFloat(v)
		}
	}
	return out
}
