package tables

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File naming constants, per SPEC_FULL.md §4.7/§6: V=64 splines-per-unit for
// the value table, A=128 for the area table, B=60 fractional bits for both
// coefficient tables, AB=63 for the Q1.63 dyadic-area files.
const (
	valueFileName     = "value_approx_coef_64spiu_60bit.data"
	areaFileName      = "area_approx_coef_128spiu_60bit.data"
	dyadicFilePattern = "areas_63bit_scale_%d.data"
)

// Load reads the three table-file groups from dir and returns an immutable
// Set, or a *LoadFailure naming the offending file and reason. Load never
// panics.
func Load(dir string) (*Set, error) {
	valueSplines, err := loadValueSplines(filepath.Join(dir, valueFileName))
	if err != nil {
		return nil, err
	}

	areaSplines, err := loadAreaSplines(filepath.Join(dir, areaFileName))
	if err != nil {
		return nil, err
	}

	var dyadic [NumDyadicScales][]int64
	for s := 0; s < NumDyadicScales; s++ {
		path := filepath.Join(dir, fmt.Sprintf(dyadicFilePattern, s))
		entries, err := loadDyadicScale(path, DyadicScaleCounts[s])
		if err != nil {
			return nil, err
		}
		dyadic[s] = entries
	}

	return &Set{
		ValueSplines: valueSplines,
		AreaSplines:  areaSplines,
		DyadicAreas:  dyadic,
	}, nil
}

func openTableFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadFailure{Path: path, Reason: ReasonNotFound}
	}
	return f, nil
}

func loadValueSplines(path string) ([]ValueSegment, error) {
	f, err := openTableFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var segments []ValueSegment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields, blank := parseTupleLine(scanner.Text())
		if blank {
			continue
		}
		if len(fields) != 4 {
			return nil, &LoadFailure{Path: path, Reason: ReasonParse}
		}
		vals, err := parseInts(fields)
		if err != nil {
			return nil, &LoadFailure{Path: path, Reason: ReasonParse}
		}
		segments = append(segments, ValueSegment{A: vals[0], B: vals[1], C: vals[2], D: vals[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadFailure{Path: path, Reason: ReasonParse}
	}
	if len(segments) != ValueSegmentCount {
		return nil, &LoadFailure{Path: path, Reason: ReasonCountMismatch}
	}
	return segments, nil
}

func loadAreaSplines(path string) ([]AreaSegment, error) {
	f, err := openTableFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var segments []AreaSegment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields, blank := parseTupleLine(scanner.Text())
		if blank {
			continue
		}
		if len(fields) != 6 {
			return nil, &LoadFailure{Path: path, Reason: ReasonParse}
		}
		vals, err := parseInts(fields)
		if err != nil {
			return nil, &LoadFailure{Path: path, Reason: ReasonParse}
		}
		segments = append(segments, AreaSegment{
			C1: vals[0], C2: vals[1], C3: vals[2],
			C4: vals[3], C5: vals[4], C6: vals[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadFailure{Path: path, Reason: ReasonParse}
	}
	if len(segments) != AreaSegmentCount {
		return nil, &LoadFailure{Path: path, Reason: ReasonCountMismatch}
	}
	return segments, nil
}

func loadDyadicScale(path string, wantCount int) ([]int64, error) {
	f, err := openTableFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimSuffix(line, ",")
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, &LoadFailure{Path: path, Reason: ReasonParse}
		}
		entries = append(entries, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadFailure{Path: path, Reason: ReasonParse}
	}
	if len(entries) != wantCount {
		return nil, &LoadFailure{Path: path, Reason: ReasonCountMismatch}
	}
	return entries, nil
}

// parseTupleLine strips the "{ ... }" braces from a record line and splits
// it into comma-separated fields. Reports blank=true for a blank line,
// which callers skip without treating it as a parse error.
func parseTupleLine(line string) (fields []string, blank bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, true
	}
	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(line, "}")
	line = strings.TrimSuffix(strings.TrimSpace(line), ",")
	return strings.Split(line, ","), false
}

func parseInts(fields []string) ([]int64, error) {
	vals := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
