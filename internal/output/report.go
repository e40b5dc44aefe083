package output

import (
	"fmt"
	"io"
	"os"

	"github.com/rpgo/hullwhite/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport formats the report and writes it to a timestamped file in dir.
// The format "all" writes every registered formatter.
func GenerateReport(report *domain.PricingReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return files, fmt.Errorf("%s: %w", f.Name(), err)
			}
			files = append(files, name)
		}
		return files, nil
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats the report straight to w.
func Render(w io.Writer, report *domain.PricingReport, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
