package config

// Malformed station table row policies
const (
	MalformedRowsFail = "fail"
	MalformedRowsSkip = "skip"
)

// Settings contains the enrichment settings shared by all jobs
type Settings struct {
	Sentinel        string `yaml:"sentinel" validate:"required"`
	DestinationType string `yaml:"destinationType" validate:"required"`
	Delimiter       string `yaml:"delimiter" validate:"len=1"`
	MalformedRows   string `yaml:"malformedRows" validate:"oneof=fail skip"`
	Indent          string `yaml:"indent" validate:"required"`
	TimeoutMS       int    `yaml:"timeoutMS" validate:"gte=0"`
}

// FieldMutators contains exact-match rewrite rules, as [from1, to1, from2, to2, ...]
type FieldMutators struct {
	StationName []string `yaml:"stationName" validate:"pairs"`
}

// JobConfig describes one station table + map document -> output run.
// Stations and Map accept local paths or http(s) URLs.
type JobConfig struct {
	Name          string        `yaml:"name" validate:"required"`
	Stations      string        `yaml:"stations" validate:"required"`
	Map           string        `yaml:"map" validate:"required"`
	Output        string        `yaml:"output" validate:"required"`
	Report        string        `yaml:"report"`
	FieldMutators FieldMutators `yaml:"fieldMutators"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Settings Settings    `yaml:"defaults"`
	Jobs     []JobConfig `yaml:"jobs"`
}
