package enrich

// Defaults used when Options leaves a field empty
const (
	DefaultDestinationType = "destination"
	DefaultSentinel        = "fixme"
)

// Lookup resolves a station name to its EVA identifier.
// *stations.StationIndex satisfies it.
type Lookup interface {
	GetEVA(name string) (string, bool)
}

// Options contains everything the enricher needs besides the lookup.
// It has no dependencies on config files.
type Options struct {
	// DestinationType is the type tag of cells that receive an eva member.
	DestinationType string

	// Sentinel is written as eva when no station matches.
	Sentinel string

	// FieldMutators defines exact rewrite rules applied before the lookup.
	// Optional - leave empty for a plain exact lookup.
	FieldMutators FieldMutators
}

// FieldMutators defines string replacement rules as [from1, to1, from2, to2, ...].
//
// Example:
//
//	FieldMutators{
//	    StationName: []string{"Frankfurt Hbf", "Frankfurt(Main)Hbf"},
//	}
//
// A destination labelled "Frankfurt Hbf" is then looked up as "Frankfurt(Main)Hbf".
type FieldMutators struct {
	StationName []string
}

// DefaultOptions returns the destination/fixme options
func DefaultOptions() Options {
	return Options{
		DestinationType: DefaultDestinationType,
		Sentinel:        DefaultSentinel,
	}
}

// Stats summarizes one Apply call
type Stats struct {
	Cells          int
	Destinations   int
	Matched        int
	Unmatched      int
	MissingText    int      // unmatched destinations with no usable text
	UnmatchedNames []string // sorted, without duplicates
}
