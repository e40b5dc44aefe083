package output

import (
	"bytes"
	"math"
	_ "embed"
	"encoding/base64"
	"html/template"

	"github.com/rpgo/hullwhite/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with one rate-path chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"rate": FormatRate,
	"num":  FormatFloat,
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	domain.PricingResult
	Chart template.URL // data URI of the rate-path PNG, empty when no path was kept
}

func (h HTMLFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	scenarios := make([]htmlScenario, 0, len(report.Results))
	for _, r := range report.Results {
		sc := htmlScenario{PricingResult: r}
		if len(r.Path) > 1 && chartable(r.Path) {
			png, err := RenderRatePathChart(r.Path, r.Grid, r.ScenarioName)
			if err != nil {
				return nil, err
			}
			sc.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
		scenarios = append(scenarios, sc)
	}

	data := struct {
		*domain.PricingReport
		Scenarios []htmlScenario
	}{report, scenarios}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartable reports whether every rate, in percent, is finite. Overflowed
// paths are valid results and are reported without a chart.
func chartable(path domain.RatePath) bool {
	for _, r := range path {
		if v := r * 100; math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
