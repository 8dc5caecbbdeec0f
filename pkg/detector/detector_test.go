package detector

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectFromLines_Android12Hour(t *testing.T) {
	lines := []string{
		"12/01/23, 10:15 am - Alice: hello there",
		"12/01/23, 10:16 am - Bob: hi",
		"12/01/23, 10:17 am - Alice: how are you",
	}

	result := New().DetectFromLines(lines)
	if !result.HasMatch() {
		t.Fatal("HasMatch() = false")
	}

	best := result.BestMatch()
	if best.Format.Name != "WhatsApp Android 12-hour" {
		t.Errorf("best format = %q", best.Format.Name)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", best.Confidence)
	}
	if best.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", best.MatchCount)
	}
	if result.AmbiguityNote == "" {
		t.Error("expected date-ordering ambiguity note for MM/DD format")
	}
}

func TestDetectFromLines_IOSBracketed(t *testing.T) {
	lines := []string{
		"[12/01/23, 10:15:09 AM] Alice: hello",
		"[12/01/23, 10:16:30 AM] Bob: hi",
	}

	result := New().DetectFromLines(lines)
	best := result.BestMatch()
	if best == nil {
		t.Fatal("BestMatch() = nil")
	}
	if best.Format.Name != "WhatsApp iOS bracketed 12-hour" {
		t.Errorf("best format = %q", best.Format.Name)
	}
}

func TestDetectFromLines_DottedDate(t *testing.T) {
	lines := []string{
		"01.12.23, 22:15 - Alice: hallo",
		"01.12.23, 22:16 - Bob: guten tag",
	}

	result := New().DetectFromLines(lines)
	best := result.BestMatch()
	if best == nil {
		t.Fatal("BestMatch() = nil")
	}
	if best.Format.Name != "WhatsApp Android dotted date" {
		t.Errorf("best format = %q", best.Format.Name)
	}
	if result.AmbiguityNote != "" {
		t.Errorf("unexpected ambiguity note: %q", result.AmbiguityNote)
	}
}

func TestDetectFromLines_NarrowSpaceStamp(t *testing.T) {
	// Newer Android exports use U+202F before the am/pm marker.
	lines := []string{"12/01/23, 10:15\u202fam - Alice: hello"}

	result := New().DetectFromLines(lines)
	if !result.HasMatch() {
		t.Fatal("HasMatch() = false for narrow-space stamp")
	}
}

func TestDetectFromLines_ContinuationLinesLowerConfidence(t *testing.T) {
	lines := []string{
		"12/01/23, 10:15 am - Alice: first line",
		"continuation of the same message",
		"12/01/23, 10:16 am - Bob: hi",
		"another continuation",
	}

	result := New().DetectFromLines(lines)
	best := result.BestMatch()
	if best == nil {
		t.Fatal("BestMatch() = nil")
	}
	if best.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", best.Confidence)
	}
}

func TestDetectFromLines_NoMatch(t *testing.T) {
	lines := []string{
		"this is just prose",
		"no stamps anywhere",
	}

	result := New().DetectFromLines(lines)
	if result.HasMatch() {
		t.Errorf("HasMatch() = true, matches = %v", result.Matches)
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() != nil for unmatched input")
	}
}

func TestDetectFromLines_Empty(t *testing.T) {
	result := New().DetectFromLines(nil)
	if result.HasMatch() || result.SampledLines != 0 {
		t.Errorf("empty input produced matches: %+v", result)
	}
}

func TestDetectFromLines_RejectsInvalidDates(t *testing.T) {
	// Matches the 12-hour pattern shape but is not a real date.
	lines := []string{"13/45/23, 10:15 am - Alice: hello"}

	result := New().DetectFromLines(lines)
	for _, m := range result.Matches {
		if m.Format.Name == "WhatsApp Android 12-hour" {
			t.Error("impossible date accepted by 12-hour format")
		}
	}
}

func TestDetectFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	content := "12/01/23, 10:15 am - Alice: hello\n" +
		"12/01/23, 10:16 am - Bob: hi\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := New().DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if !result.HasMatch() {
		t.Fatal("HasMatch() = false")
	}
	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2", result.SampledLines)
	}
}

func TestDetectFromFile_Missing(t *testing.T) {
	_, err := New().DetectFromFile(context.Background(), "/nonexistent/chat.txt")
	if err == nil {
		t.Error("DetectFromFile() expected error for missing file")
	}
}

func TestSampleSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("12/01/23, 10:15 am - Alice: hello\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := New(WithSampleSize(10)).DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10", result.SampledLines)
	}
}

func TestDefaultFormats_Compiled(t *testing.T) {
	for _, f := range DefaultFormats() {
		if f.Pattern == nil {
			t.Errorf("format %q has nil pattern", f.Name)
		}
		for _, example := range f.Examples {
			if !f.Pattern.MatchString(example) {
				t.Errorf("format %q does not match its own example %q", f.Name, example)
			}
		}
	}
}
