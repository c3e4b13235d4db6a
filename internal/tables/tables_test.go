package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "tabledata")
}

func TestLoad_Shipped(t *testing.T) {
	set, err := Load(testdataDir(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(set.ValueSplines) != ValueSegmentCount {
		t.Errorf("len(ValueSplines) = %d, want %d", len(set.ValueSplines), ValueSegmentCount)
	}
	if len(set.AreaSplines) != AreaSegmentCount {
		t.Errorf("len(AreaSplines) = %d, want %d", len(set.AreaSplines), AreaSegmentCount)
	}
	for s := 0; s < NumDyadicScales; s++ {
		if len(set.DyadicAreas[s]) != DyadicScaleCounts[s] {
			t.Errorf("len(DyadicAreas[%d]) = %d, want %d", s, len(set.DyadicAreas[s]), DyadicScaleCounts[s])
		}
	}
}

func TestLoad_FirstValueSegmentMatchesShippedData(t *testing.T) {
	set, err := Load(testdataDir(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := ValueSegment{A: 4503233140271241, B: -576495932380763470, C: 0, D: 1152921504606846976}
	if set.ValueSplines[0] != want {
		t.Errorf("ValueSplines[0] = %+v, want %+v", set.ValueSplines[0], want)
	}
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(testdataDir(t), "does-not-exist"))
	if err == nil {
		t.Fatal("Load() on missing dir succeeded, want error")
	}
	lf, ok := err.(*LoadFailure)
	if !ok {
		t.Fatalf("Load() error type = %T, want *LoadFailure", err)
	}
	if lf.Reason != ReasonNotFound {
		t.Errorf("Load() reason = %v, want ReasonNotFound", lf.Reason)
	}
}

// writeValidFixture populates dir with a complete, correctly-sized table
// set so a single file can be overridden per test to exercise one failure
// mode at a time.
func writeValidFixture(t *testing.T, dir string) {
	t.Helper()
	writeLines(t, filepath.Join(dir, valueFileName), repeatLine("{ 1, 2, 3, 4 }", ValueSegmentCount))
	writeLines(t, filepath.Join(dir, areaFileName), repeatLine("{ 1, 2, 3, 4, 5, 6 }", AreaSegmentCount))
	for s := 0; s < NumDyadicScales; s++ {
		path := filepath.Join(dir, fmt.Sprintf(dyadicFilePattern, s))
		writeLines(t, path, repeatLine("1,", DyadicScaleCounts[s]))
	}
}

func TestLoad_CountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeValidFixture(t, dir)
	writeLines(t, filepath.Join(dir, valueFileName), []string{"{ 1, 2, 3, 4 }"})

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() with short value table succeeded, want error")
	}
	lf, ok := err.(*LoadFailure)
	if !ok {
		t.Fatalf("Load() error type = %T, want *LoadFailure", err)
	}
	if lf.Reason != ReasonCountMismatch {
		t.Errorf("Load() reason = %v, want ReasonCountMismatch", lf.Reason)
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeValidFixture(t, dir)
	lines := repeatLine("{ 1, 2, 3, 4 }", ValueSegmentCount-1)
	lines = append(lines, "{ not, a, number, here }")
	writeLines(t, filepath.Join(dir, valueFileName), lines)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() with malformed value line succeeded, want error")
	}
	lf, ok := err.(*LoadFailure)
	if !ok {
		t.Fatalf("Load() error type = %T, want *LoadFailure", err)
	}
	if lf.Reason != ReasonParse {
		t.Errorf("Load() reason = %v, want ReasonParse", lf.Reason)
	}
}

func repeatLine(line string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

func writeLines(t *testing.T, path string, lines []string) {
	t.Helper()
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile(%s) error = %v", path, err)
	}
}
