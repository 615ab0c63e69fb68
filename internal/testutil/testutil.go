// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchdash/internal/dataset"
)

// Fixture facts for LaunchCSV.
const (
	FixtureRecords   = 30
	FixtureSuccesses = 17
	FixtureMinMass   = 0.0
	FixtureMaxMass   = 9600.0
)

// LaunchCSV is a small launch dataset with known counts:
// CCAFS LC-40 8 records (2 successes), VAFB SLC-4E 4 (2),
// KSC LC-39A 13 (10), CCAFS SLC-40 5 (3).
const LaunchCSV = `
,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,0.0,F9 v1.0  B0004,v1.0
2,3,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0
3,4,CCAFS LC-40,0,500.0,F9 v1.0  B0006,v1.0
4,5,CCAFS LC-40,0,677.0,F9 v1.0  B0007,v1.0
5,7,CCAFS LC-40,1,3170.0,F9 v1.1,v1.1
6,8,CCAFS LC-40,0,3325.0,F9 v1.1,v1.1
7,9,CCAFS LC-40,1,2296.0,F9 v1.1,v1.1
8,6,VAFB SLC-4E,0,500.0,F9 v1.1  B1003,v1.1
9,10,VAFB SLC-4E,1,9600.0,F9 FT B1029.1,FT
10,11,VAFB SLC-4E,1,475.0,F9 B4 B1041.1,B4
11,12,VAFB SLC-4E,0,9600.0,F9 B4 B1041.2,B4
12,13,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
13,14,KSC LC-39A,0,5600.0,F9 FT B1030,FT
14,15,KSC LC-39A,1,5300.0,F9 FT B1021.2,FT
15,16,KSC LC-39A,1,3696.65,F9 FT B1032.1,FT
16,17,KSC LC-39A,1,6070.0,F9 FT B1034,FT
17,18,KSC LC-39A,0,2708.0,F9 FT B1035.1,FT
18,19,KSC LC-39A,1,3669.0,F9 FT B1036.1,FT
19,20,KSC LC-39A,1,4990.0,F9 B4 B1040.1,B4
20,21,KSC LC-39A,1,5200.0,F9 B4 B1043.1,B4
21,22,KSC LC-39A,0,3500.0,F9 B5 B1046.1,B5
22,23,KSC LC-39A,1,4000.0,F9 B5 B1046.2,B5
23,24,KSC LC-39A,1,2205.0,F9 B5 B1047.1,B5
24,25,KSC LC-39A,1,9000.0,F9 B5 B1048.1,B5
25,26,CCAFS SLC-40,1,2150.0,F9 FT B1038.1,FT
26,27,CCAFS SLC-40,0,7076.0,F9 FT B1025.2,FT
27,28,CCAFS SLC-40,1,5384.0,F9 B4 B1044,B4
28,29,CCAFS SLC-40,1,3600.0,F9 B5 B1049.1,B5
29,30,CCAFS SLC-40,0,1900.0,F9 B5 B1050,B5
`

// Dataset loads LaunchCSV into a dataset, failing the test on error.
func Dataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.Load(strings.NewReader(LaunchCSV), "fixture")
	if err != nil {
		t.Fatalf("failed to load fixture dataset: %v", err)
	}
	return ds
}

// WriteCSV writes content to a file in a temp directory and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "launches.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}
