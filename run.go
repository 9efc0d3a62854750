package trainmapeva

import (
	"fmt"
	"log"

	"github.com/theoremus-urban-solutions/trainmap-eva/config"
	"github.com/theoremus-urban-solutions/trainmap-eva/enrich"
	"github.com/theoremus-urban-solutions/trainmap-eva/formatter"
	"github.com/theoremus-urban-solutions/trainmap-eva/stations"
	"github.com/theoremus-urban-solutions/trainmap-eva/trainmap"
)

// Result describes a finished run
type Result struct {
	Job        string
	Output     string
	Report     string // empty when no report was requested
	Stations   int
	Skipped    int
	Overwrites int
	Stats      enrich.Stats
}

// Run executes one job: load stations, decode the map, enrich, write.
// The first failing step aborts the run; its error names the step.
func Run(settings config.Settings, job config.JobConfig) (*Result, error) {
	f := newFetcher(settings.TimeoutMS)

	tableBytes, err := f.fetch(job.Stations)
	if err != nil {
		return nil, fmt.Errorf("read stations: %w", err)
	}
	index, err := stations.NewStationIndexFromBytes(tableBytes, loadOptions(settings))
	if err != nil {
		return nil, fmt.Errorf("load stations %s: %w", job.Stations, err)
	}
	log.Printf("[%s] loaded %d stations from %s (%d skipped, %d overwritten)",
		job.Name, index.Len(), job.Stations, index.Skipped(), index.Overwrites())

	mapBytes, err := f.fetch(job.Map)
	if err != nil {
		return nil, fmt.Errorf("read map document: %w", err)
	}
	doc, err := trainmap.DecodeDocument(mapBytes)
	if err != nil {
		return nil, fmt.Errorf("parse map document %s: %w", job.Map, err)
	}
	e := enrich.NewEnricher(index, enrich.Options{
		DestinationType: settings.DestinationType,
		Sentinel:        settings.Sentinel,
		FieldMutators:   enrich.FieldMutators{StationName: job.FieldMutators.StationName},
	})
	log.Printf("[%s] loaded %d cells (%d destinations) from %s",
		job.Name, len(doc), doc.CountType(e.Options().DestinationType), job.Map)

	out, stats := e.Apply(doc)
	log.Printf("[%s] %d destinations: %d matched, %d set to %q",
		job.Name, stats.Destinations, stats.Matched, stats.Unmatched, e.Options().Sentinel)

	if err := formatter.WriteFile(job.Output, out, settings.Indent); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	res := &Result{
		Job:        job.Name,
		Output:     job.Output,
		Stations:   index.Len(),
		Skipped:    index.Skipped(),
		Overwrites: index.Overwrites(),
		Stats:      stats,
	}
	if job.Report != "" {
		report := formatter.BuildUnmatchedReport(stats, e.Options().Sentinel, job.Output)
		if err := formatter.WriteUnmatchedReport(job.Report, report); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		res.Report = job.Report
		log.Printf("[%s] unmatched report written to %s", job.Name, job.Report)
	}
	return res, nil
}

func loadOptions(settings config.Settings) stations.LoadOptions {
	opts := stations.DefaultLoadOptions()
	if r := []rune(settings.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	opts.SkipMalformed = settings.MalformedRows == config.MalformedRowsSkip
	return opts
}
