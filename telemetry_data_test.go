package decompress

import (
	"fmt"
	"testing"
	"time"
)

// TestDataString tests the String method of the data struct
func TestDataString(t *testing.T) {
	m := TelemetryData{
		DecodedEntries:      9,
		DroppedEntries:      1,
		ExtractedDirs:       1,
		ExtractedFiles:      5,
		ExtractedLinks:      0,
		ExtractedSymlinks:   2,
		ExtractionDuration:  time.Duration(5 * time.Millisecond),
		ExtractionErrors:    1,
		ExtractionSize:      1024,
		InputSize:           2048,
		LastExtractionError: fmt.Errorf("example error"),
	}

	expected := `{"last_extraction_error":"example error","decoded_entries":9,"dry_run":false,"dropped_entries":1,"extracted_dirs":1,"extracted_files":5,"extracted_links":0,"extracted_symlinks":2,"extraction_duration":5000000,"extraction_errors":1,"extraction_size":1024,"input_size":2048}`
	if m.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, m.String())
	}
}

// TestDataStringWithoutError tests that a missing error is serialized as empty string
func TestDataStringWithoutError(t *testing.T) {
	m := TelemetryData{DryRun: true}

	expected := `{"last_extraction_error":"","decoded_entries":0,"dry_run":true,"dropped_entries":0,"extracted_dirs":0,"extracted_files":0,"extracted_links":0,"extracted_symlinks":0,"extraction_duration":0,"extraction_errors":0,"extraction_size":0,"input_size":0}`
	if m.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, m.String())
	}
}
