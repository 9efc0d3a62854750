package enrich

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/trainmap-eva/stations"
	"github.com/theoremus-urban-solutions/trainmap-eva/trainmap"
)

func loadIndex(t *testing.T, rows ...string) *stations.StationIndex {
	t.Helper()
	idx, err := stations.NewStationIndexFromReader(strings.NewReader(strings.Join(rows, "\n")), stations.DefaultLoadOptions())
	require.NoError(t, err)
	return idx
}

func loadDocument(t *testing.T, s string) trainmap.Document {
	t.Helper()
	doc, err := trainmap.DecodeDocument([]byte(s))
	require.NoError(t, err)
	return doc
}

func eva(t *testing.T, c trainmap.Cell) string {
	t.Helper()
	v, ok := c.EVA()
	require.True(t, ok, "cell %v has no eva", c.Keys())
	return v
}

func TestApply_MatchAndSentinel(t *testing.T) {
	idx := loadIndex(t, "8000105;Frankfurt(Main)Hbf", "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"destination","text":"Frankfurt(Main)Hbf"},
		{"type":"destination","text":"Unknown Station"}
	]`)

	out, stats := NewEnricher(idx, DefaultOptions()).Apply(doc)

	require.Len(t, out, 2)
	assert.Equal(t, "8000105", eva(t, out[0]))
	assert.Equal(t, "fixme", eva(t, out[1]))

	assert.Equal(t, Stats{
		Cells:          2,
		Destinations:   2,
		Matched:        1,
		Unmatched:      1,
		UnmatchedNames: []string{"Unknown Station"},
	}, stats)
}

func TestApply_DuplicateRowsUseLaterIdentifier(t *testing.T) {
	idx := loadIndex(t, "8000105;Frankfurt(Main)Hbf", "8098105;Frankfurt(Main)Hbf")
	doc := loadDocument(t, `[{"type":"destination","text":"Frankfurt(Main)Hbf"}]`)

	out, _ := NewEnricher(idx, DefaultOptions()).Apply(doc)

	assert.Equal(t, "8098105", eva(t, out[0]))
}

func TestApply_OtherTypesUntouched(t *testing.T) {
	idx := loadIndex(t, "8000105;Frankfurt(Main)Hbf")
	doc := loadDocument(t, `[
		{"x":0,"y":0,"type":"origin","text":"Frankfurt(Main)Hbf","highlighted":false,"classes":[]},
		{"type":"Destination","text":"Frankfurt(Main)Hbf"},
		{"classes":["border-left"],"type":"rail"},
		{"text":"Frankfurt(Main)Hbf"}
	]`)

	out, stats := NewEnricher(idx, DefaultOptions()).Apply(doc)

	require.Len(t, out, len(doc))
	for i := range doc {
		_, ok := out[i].EVA()
		assert.False(t, ok, "cell %d gained eva", i)

		want, err := json.Marshal(doc[i])
		require.NoError(t, err)
		got, err := json.Marshal(out[i])
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
	assert.Equal(t, 0, stats.Destinations)
	assert.Empty(t, stats.UnmatchedNames)
}

func TestApply_PreservesOrderAndCount(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"rail","x":0},
		{"type":"destination","text":"Mannheim Hbf","x":1},
		{"type":"rail","x":2},
		{"type":"destination","text":"Köln Hbf","x":3}
	]`)

	out, _ := NewEnricher(idx, DefaultOptions()).Apply(doc)

	require.Len(t, out, 4)
	for i, c := range out {
		assert.Equal(t, string(mustGet(t, doc[i], "x")), string(mustGet(t, c, "x")))
	}
	assert.Equal(t, []string{"type", "text", "x", "eva"}, out[1].Keys())
}

func mustGet(t *testing.T, c trainmap.Cell, key string) json.RawMessage {
	t.Helper()
	raw, ok := c.Get(key)
	require.True(t, ok)
	return raw
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[{"type":"destination","text":"Mannheim Hbf"}]`)

	out, _ := NewEnricher(idx, DefaultOptions()).Apply(doc)

	_, ok := doc[0].EVA()
	assert.False(t, ok)
	assert.Equal(t, "8000261", eva(t, out[0]))
}

func TestApply_OverwritesExistingEVA(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"destination","eva":"fixme","text":"Mannheim Hbf"},
		{"type":"destination","eva":"8000261","text":"Gone Hbf"}
	]`)

	out, _ := NewEnricher(idx, DefaultOptions()).Apply(doc)

	assert.Equal(t, "8000261", eva(t, out[0]))
	assert.Equal(t, []string{"type", "eva", "text"}, out[0].Keys())
	assert.Equal(t, "fixme", eva(t, out[1]))
}

func TestApply_MissingOrNonStringText(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"destination"},
		{"type":"destination","text":8000261},
		{"type":"destination","text":null}
	]`)
	doc = append(doc, loadDocument(t, `[{"type":"destination","text":""}]`)...)

	out, stats := NewEnricher(idx, DefaultOptions()).Apply(doc)

	for _, c := range out {
		assert.Equal(t, "fixme", eva(t, c))
	}
	assert.Equal(t, 4, stats.Unmatched)
	assert.Equal(t, 4, stats.MissingText)
	assert.Empty(t, stats.UnmatchedNames)
}

func TestApply_CaseSensitiveLookup(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[{"type":"destination","text":"mannheim hbf"},{"type":"destination","text":" Mannheim Hbf"}]`)

	out, stats := NewEnricher(idx, DefaultOptions()).Apply(doc)

	assert.Equal(t, "fixme", eva(t, out[0]))
	assert.Equal(t, "fixme", eva(t, out[1]))
	assert.Equal(t, []string{" Mannheim Hbf", "mannheim hbf"}, stats.UnmatchedNames)
}

func TestApply_EmptyIdentifierIsAMiss(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf", ";Mannheim Hbf")
	doc := loadDocument(t, `[{"type":"destination","text":"Mannheim Hbf"}]`)

	out, stats := NewEnricher(idx, DefaultOptions()).Apply(doc)

	assert.Equal(t, "fixme", eva(t, out[0]))
	assert.Equal(t, 0, stats.Matched)
	assert.Equal(t, []string{"Mannheim Hbf"}, stats.UnmatchedNames)
}

type staticLookup map[string]string

func (l staticLookup) GetEVA(name string) (string, bool) {
	v, ok := l[name]
	return v, ok
}

func TestResolveEVA_EmptyIdentifierFromLookup(t *testing.T) {
	e := NewEnricher(staticLookup{"Mannheim Hbf": ""}, DefaultOptions())

	got, ok := e.ResolveEVA("Mannheim Hbf")
	assert.False(t, ok)
	assert.Equal(t, "fixme", got)
}

func TestApply_FieldMutators(t *testing.T) {
	idx := loadIndex(t, "8000105;Frankfurt(Main)Hbf")
	doc := loadDocument(t, `[{"type":"destination","text":"Frankfurt Hbf"}]`)

	opts := DefaultOptions()
	opts.FieldMutators.StationName = []string{"Frankfurt Hbf", "Frankfurt(Main)Hbf"}
	out, stats := NewEnricher(idx, opts).Apply(doc)

	assert.Equal(t, "8000105", eva(t, out[0]))
	text, _ := out[0].Text()
	assert.Equal(t, "Frankfurt Hbf", text)
	assert.Equal(t, 1, stats.Matched)
}

func TestApply_CustomOptions(t *testing.T) {
	idx := loadIndex(t, "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"terminus","text":"Mannheim Hbf"},
		{"type":"terminus","text":"Nowhere"},
		{"type":"destination","text":"Mannheim Hbf"}
	]`)

	out, _ := NewEnricher(idx, Options{DestinationType: "terminus", Sentinel: "TODO"}).Apply(doc)

	assert.Equal(t, "8000261", eva(t, out[0]))
	assert.Equal(t, "TODO", eva(t, out[1]))
	_, ok := out[2].EVA()
	assert.False(t, ok)
}

func TestNewEnricher_EmptyOptionsUseDefaults(t *testing.T) {
	e := NewEnricher(loadIndex(t), Options{})
	assert.Equal(t, DefaultOptions(), e.Options())
}

func TestApply_Idempotent(t *testing.T) {
	idx := loadIndex(t, "8000105;Frankfurt(Main)Hbf", "8000261;Mannheim Hbf")
	doc := loadDocument(t, `[
		{"type":"destination","text":"Frankfurt(Main)Hbf"},
		{"type":"rail"},
		{"type":"destination","text":"Unknown Station"}
	]`)
	e := NewEnricher(idx, DefaultOptions())

	first, _ := e.Apply(doc)
	second, _ := e.Apply(doc)
	again, _ := e.Apply(first)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	c, err := json.Marshal(again)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, string(a), string(c))
}

func TestApply_EmptyDocument(t *testing.T) {
	out, stats := NewEnricher(loadIndex(t), DefaultOptions()).Apply(trainmap.Document{})
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
	assert.Equal(t, 0, stats.Cells)
}
