package stations

// StationIndex stores station name -> EVA identifier lookups in memory
type StationIndex struct {
	evaByName  map[string]string // station name -> EVA identifier
	overwrites int               // names replaced by a later row
	skipped    int               // malformed rows dropped while loading
}

// NewStationIndex creates a new empty station index
func NewStationIndex() *StationIndex {
	return &StationIndex{evaByName: map[string]string{}}
}

// Add registers a station; a later Add for the same name wins
func (s *StationIndex) Add(eva, name string) {
	if _, ok := s.evaByName[name]; ok {
		s.overwrites++
	}
	s.evaByName[name] = eva
}

// GetEVA returns the identifier for an exact, case-sensitive station name.
// A name whose last row had an empty identifier is reported as a miss.
func (s *StationIndex) GetEVA(name string) (string, bool) {
	eva, ok := s.evaByName[name]
	if !ok || eva == "" {
		return "", false
	}
	return eva, true
}

// GetEVAOrDefault returns the identifier for name or fallback on a miss
func (s *StationIndex) GetEVAOrDefault(name, fallback string) string {
	if eva, ok := s.GetEVA(name); ok {
		return eva
	}
	return fallback
}

// Len returns the number of indexed station names
func (s *StationIndex) Len() int { return len(s.evaByName) }

// Overwrites returns how many rows replaced an earlier row for the same name
func (s *StationIndex) Overwrites() int { return s.overwrites }

// Skipped returns how many malformed rows were dropped while loading
func (s *StationIndex) Skipped() int { return s.skipped }

