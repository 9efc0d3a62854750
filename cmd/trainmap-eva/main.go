package main

import (
	"flag"
	"fmt"
	"os"

	lib "github.com/theoremus-urban-solutions/trainmap-eva"
	"github.com/theoremus-urban-solutions/trainmap-eva/config"
)

// overrides holds the flag values that replace fields of the selected job
type overrides struct {
	stations string
	mapPath  string
	output   string
	report   string
}

func main() {
	configPath := flag.String("config", "", "config file (default: config.yml if present)")
	jobName := flag.String("job", "", "job name from config.jobs[]")
	stations := flag.String("stations", "", "station table path or URL (overrides config)")
	mapPath := flag.String("map", "", "map document path or URL (overrides config)")
	output := flag.String("out", "", "output path (overrides config)")
	report := flag.String("report", "", "unmatched report path (overrides config)")
	quiet := flag.Bool("quiet", false, "only print the confirmation line")
	flag.Parse()

	lib.InitLogging(*quiet)

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fail("load config", err)
	}
	job, err := config.SelectJob(cfg, *jobName)
	if err != nil {
		fail("select job", err)
	}
	job = applyOverrides(job, overrides{
		stations: *stations,
		mapPath:  *mapPath,
		output:   *output,
		report:   *report,
	})

	res, err := lib.Run(cfg.Settings, job)
	if err != nil {
		fail(job.Name, err)
	}
	fmt.Printf("Updated JSON with EVA numbers saved to %s\n", res.Output)
}

func applyOverrides(job config.JobConfig, o overrides) config.JobConfig {
	if o.stations != "" {
		job.Stations = o.stations
	}
	if o.mapPath != "" {
		job.Map = o.mapPath
	}
	if o.output != "" {
		job.Output = o.output
	}
	if o.report != "" {
		job.Report = o.report
	}
	return job
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
