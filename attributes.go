package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const colorPrefix = "Color "

// Leading numeric prefixes, matching how the data files were authored:
// "1980" and "1980 GDP" are both period columns, "Color 1980" is not.
var (
	leadingIntPattern   = regexp.MustCompile(`^\s*[+-]?\d`)
	leadingFloatPattern = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// parseLeadingInt reports whether s starts with an integer.
func parseLeadingInt(s string) bool {
	return leadingIntPattern.MatchString(s)
}

// parseLeadingFloat parses the numeric prefix of s. NaN when there is none.
func parseLeadingFloat(s string) float64 {
	m := leadingFloatPattern.FindString(s)
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		// Exponent overflow and the like
		return math.NaN()
	}
	return v
}

// processData returns the ordered period attributes. Only the first feature's
// properties are inspected; the rest of the collection is assumed to share its
// schema (see validateSchema).
func processData(ds *Dataset) ([]string, error) {
	if ds == nil || len(ds.Features) == 0 {
		return nil, ErrEmptyDataset
	}
	var attributes []string
	for _, key := range ds.Features[0].Keys {
		if parseLeadingInt(key) {
			attributes = append(attributes, key)
		}
	}
	return attributes, nil
}

// calculateMinValue returns the minimum of every numeric property across the
// whole collection. ok is false when no property parses as a number.
func calculateMinValue(ds *Dataset) (minValue float64, ok bool) {
	minValue = math.Inf(1)
	for _, f := range ds.Features {
		for _, raw := range f.Properties {
			v := parseLeadingFloat(raw)
			if math.IsNaN(v) {
				continue
			}
			ok = true
			minValue = math.Min(minValue, v)
		}
	}
	if !ok {
		return math.NaN(), false
	}
	return minValue, true
}

// SchemaIssue describes a feature that lacks a period value or its color.
type SchemaIssue struct {
	FeatureIndex int
	City         string
	Property     string
}

func (i SchemaIssue) String() string {
	return fmt.Sprintf("feature %d (%s) has no '%s'", i.FeatureIndex, i.City, i.Property)
}

func validateSchema(ds *Dataset, attributes []string) []SchemaIssue {
	var issues []SchemaIssue
	for idx, f := range ds.Features {
		for _, attr := range attributes {
			for _, prop := range []string{attr, colorPrefix + attr} {
				if _, ok := f.Properties[prop]; !ok {
					issues = append(issues, SchemaIssue{FeatureIndex: idx, City: f.City(), Property: prop})
				}
			}
		}
	}
	return issues
}

// logSchemaIssues reports at most a handful of issues individually and then a total.
func logSchemaIssues(issues []SchemaIssue) {
	const maxReported = 10
	entry := log.WithField("prefix", "schema")
	for i, issue := range issues {
		if i == maxReported {
			entry.Warnf("... and %d more schema issues", len(issues)-maxReported)
			break
		}
		entry.Warn(issue.String())
	}
}
