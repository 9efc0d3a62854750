/*
Package stations loads the EVA station table and indexes it by station name.

The table is delimited text without a header row, one station per record:

	8000105;Frankfurt(Main)Hbf
	8000261;Mannheim Hbf

This package is data-source agnostic: it accepts raw bytes or an io.Reader
and builds an in-memory index. It does NOT handle HTTP downloads or file paths.

# Basic Usage

	index, err := stations.NewStationIndexFromBytes(data, stations.DefaultLoadOptions())
	if err != nil {
	    log.Fatal(err)
	}
	eva := index.GetEVAOrDefault("Frankfurt(Main)Hbf", "fixme")

# Duplicates

A station name listed more than once keeps the identifier of its last row.
Replacements are counted (Overwrites) but never rejected.

# Malformed Rows

A row needs two fields. By default a shorter row stops loading with a
*MalformedRowError; with SkipMalformed it is dropped and counted (Skipped).

An empty identifier is stored like any other and takes part in last-write-wins,
so it can blank out an earlier identifier for the same name. Lookups treat an
empty identifier as a miss. Rows with an empty name are not indexed.
*/
package stations
