/*
Package enrich adds EVA station identifiers to the destination cells of a
train map.

# Basic Usage

	index, _ := stations.NewStationIndexFromBytes(table, stations.DefaultLoadOptions())
	doc, _ := trainmap.DecodeDocument(mapJSON)

	e := enrich.NewEnricher(index, enrich.DefaultOptions())
	out, stats := e.Apply(doc)

Every cell whose type equals Options.DestinationType gets an eva member: the
identifier of the station named by its text, or Options.Sentinel when the
table has no such station. The sentinel is a visible marker for manual
follow-up, so a miss is never an error. Stats.UnmatchedNames lists the names
that need that follow-up; destinations without a usable text are only
counted (Stats.MissingText).

All other cells are copied unchanged. Apply never modifies its input.

# Field Mutators

FieldMutators.StationName rewrites a cell text before the lookup, using exact
from/to pairs. The cell's own text member is left as it is.
*/
package enrich
