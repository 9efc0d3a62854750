// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package supports multiple enrichment jobs and allows job selection by name.
// When no config file exists the built-in defaults reproduce the classic
// evas.csv + trainmap_cells_corrected.json -> trainmap_with_eva.json run.
package config
