package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const runGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><name>Dune Run</name><trkseg>
    <trkpt lat="52.0" lon="5.0"></trkpt>
    <trkpt lat="52.0" lon="5.1"></trkpt>
  </trkseg></trk>
</gpx>`

const emptyGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1"></gpx>`

func writeTrails(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRunPrintsLines(t *testing.T) {
	dir := writeTrails(t, map[string]string{"a.gpx": runGPX, "b.gpx": emptyGPX, "notes.txt": "x"})
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-dir", dir}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", stdout.String())
	}
	if lines[0] != "Dune Run\t6.9 km\t52.00000,5.05000" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "b.gpx\t0.0 km\t52.00000,5.00000" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestRunJSON(t *testing.T) {
	dir := writeTrails(t, map[string]string{"a.gpx": runGPX})
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-dir", dir, "-json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var out []map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0]["length_label"] != "6.9 km" || out[0]["point_count"] != float64(2) {
		t.Fatalf("unexpected output %v", out)
	}
}

func TestRunStopsOnParseFailure(t *testing.T) {
	dir := writeTrails(t, map[string]string{"a.gpx": "<gpx", "b.gpx": runGPX})
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-dir", dir}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "a.gpx") {
		t.Fatalf("expected failing file in stderr, got %q", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
