package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSample = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [10, 50]},
     "properties": {"City": "A", "2000": "50", "Color 2000": "#fff"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [20, 40]},
     "properties": {"City": "B", "2000": "200", "Color 2000": "#000"}}
  ]
}`

func TestProcessData(t *testing.T) {
	attrs, err := processData(mustDecode(t, testSample))
	require.NoError(t, err)
	assert.Equal(t, []string{"2000"}, attrs)
}

func TestProcessDataKeepsDeclarationOrder(t *testing.T) {
	ds := mustDecode(t, `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},
		 "properties":{"2010":"3","City":"A","1990":"1","Color 1990":"#000","2000 GDP":"2","GDP 1995":"9"}}]}`)
	attrs, err := processData(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"2010", "1990", "2000 GDP"}, attrs)
}

func TestProcessDataEmpty(t *testing.T) {
	_, err := processData(&Dataset{})
	assert.True(t, errors.Is(err, ErrEmptyDataset))
	_, err = processData(nil)
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestParseLeadingFloat(t *testing.T) {
	cases := map[string]float64{
		"50":       50,
		" 12.5":    12.5,
		"1e3":      1000,
		"-4":       -4,
		".5":       0.5,
		"1980 GDP": 1980,
		"7abc":     7,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLeadingFloat(in), in)
	}
	for _, in := range []string{"", "abc", "#fff", "City"} {
		assert.True(t, math.IsNaN(parseLeadingFloat(in)), in)
	}
}

func TestCalculateMinValue(t *testing.T) {
	v, ok := calculateMinValue(mustDecode(t, testSample))
	assert.True(t, ok)
	assert.Equal(t, 50.0, v)

	noNumbers := mustDecode(t, `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"City":"A","Color 2000":"#fff"}}]}`)
	v, ok = calculateMinValue(noNumbers)
	assert.False(t, ok)
	assert.True(t, math.IsNaN(v))
}

func TestValidateSchema(t *testing.T) {
	ds := mustDecode(t, twoPeriodCollection)
	issues := validateSchema(ds, []string{"2000", "2005"})
	require.Len(t, issues, 2)
	assert.Equal(t, SchemaIssue{FeatureIndex: 1, City: "B", Property: "2005"}, issues[0])
	assert.Equal(t, SchemaIssue{FeatureIndex: 1, City: "B", Property: "Color 2005"}, issues[1])
	assert.Equal(t, "feature 1 (B) has no '2005'", issues[0].String())
}
