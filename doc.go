// Package trainmapeva adds EVA station identifiers to train map descriptions.
//
// A run reads the station table (identifier;name), indexes it by name, sets
// the eva member of every destination cell of the map document and writes
// the result as indented JSON:
//
//	cfg, _ := config.LoadAppConfig("")
//	job, _ := config.SelectJob(cfg, "")
//	res, err := trainmapeva.Run(cfg.Settings, job)
//
// Inputs may be local paths or http(s) URLs.
package trainmapeva
