package enrich

import (
	"sort"

	"github.com/theoremus-urban-solutions/trainmap-eva/trainmap"
	"github.com/theoremus-urban-solutions/trainmap-eva/utils"
)

// Enricher sets eva members on destination cells
type Enricher struct {
	lookup Lookup
	opts   Options
}

// NewEnricher creates an enricher; empty options fall back to the defaults
func NewEnricher(lookup Lookup, opts Options) *Enricher {
	if opts.DestinationType == "" {
		opts.DestinationType = DefaultDestinationType
	}
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}
	return &Enricher{lookup: lookup, opts: opts}
}

// Options returns the effective options
func (e *Enricher) Options() Options { return e.opts }

// ResolveEVA returns the identifier for a cell text, or the sentinel on a miss.
// An empty identifier counts as a miss.
func (e *Enricher) ResolveEVA(text string) (string, bool) {
	name := utils.ApplyFieldMutators(text, e.opts.FieldMutators.StationName)
	if eva, ok := e.lookup.GetEVA(name); ok && eva != "" {
		return eva, true
	}
	return e.opts.Sentinel, false
}

// Apply returns an enriched copy of doc together with run statistics
func (e *Enricher) Apply(doc trainmap.Document) (trainmap.Document, Stats) {
	out := make(trainmap.Document, len(doc))
	stats := Stats{Cells: len(doc)}
	unmatched := map[string]struct{}{}

	for i, cell := range doc {
		c := cell.Clone()
		if c.Type() == e.opts.DestinationType {
			stats.Destinations++
			eva, matched := e.opts.Sentinel, false
			text, ok := c.Text()
			if ok {
				eva, matched = e.ResolveEVA(text)
			}
			c.SetEVA(eva)
			switch {
			case matched:
				stats.Matched++
			case !ok || text == "":
				stats.Unmatched++
				stats.MissingText++
			default:
				stats.Unmatched++
				unmatched[text] = struct{}{}
			}
		}
		out[i] = c
	}

	stats.UnmatchedNames = make([]string, 0, len(unmatched))
	for name := range unmatched {
		stats.UnmatchedNames = append(stats.UnmatchedNames, name)
	}
	sort.Strings(stats.UnmatchedNames)
	return out, stats
}
