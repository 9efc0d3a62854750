package formatter

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/trainmap-eva/enrich"
	"github.com/theoremus-urban-solutions/trainmap-eva/utils"
)

// UnmatchedReport lists the destinations that received the sentinel
type UnmatchedReport struct {
	Generated    string   `yaml:"generated"`
	Output       string   `yaml:"output"`
	Sentinel     string   `yaml:"sentinel"`
	Destinations int      `yaml:"destinations"`
	Matched      int      `yaml:"matched"`
	Unmatched    int      `yaml:"unmatched"`
	MissingText  int      `yaml:"missingText"`
	Stations     []string `yaml:"stations"`
}

// BuildUnmatchedReport creates a report for one enrichment run
func BuildUnmatchedReport(stats enrich.Stats, sentinel, output string) UnmatchedReport {
	names := stats.UnmatchedNames
	if names == nil {
		names = []string{}
	}
	return UnmatchedReport{
		Generated:    utils.Iso8601Now(),
		Output:       output,
		Sentinel:     sentinel,
		Destinations: stats.Destinations,
		Matched:      stats.Matched,
		Unmatched:    stats.Unmatched,
		MissingText:  stats.MissingText,
		Stations:     names,
	}
}

// WriteUnmatchedReport writes the report as YAML to path
func WriteUnmatchedReport(path string, report UnmatchedReport) error {
	b, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
