package report

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"organizemybeats/internal/model"
	"organizemybeats/internal/organizer"
)

func TestBuildAndWrite(t *testing.T) {
	dest := t.TempDir()

	result := model.NewResult()
	result.Record(&model.Track{Format: "mp3", Year: 1999, Size: 10, Outcome: model.OutcomeCopied})
	result.Record(&model.Track{
		SourcePath: "/music/broken.mp3",
		Format:     "mp3",
		Outcome:    model.OutcomeError,
		Reason:     "copy failed",
	})

	cfg := organizer.Config{Source: "/music", Destination: dest}
	rep := Build(cfg, result)

	if rep.Source != "/music" || rep.Destination != dest {
		t.Errorf("report paths = %q, %q", rep.Source, rep.Destination)
	}
	if len(rep.Errors) != 1 || rep.Errors[0].File != "/music/broken.mp3" {
		t.Errorf("Errors = %v, want one entry for broken.mp3", rep.Errors)
	}

	path, err := rep.Write(context.Background())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	stats, ok := decoded["stats"].(map[string]interface{})
	if !ok {
		t.Fatal("report missing stats object")
	}
	if stats["copied"].(float64) != 1 {
		t.Errorf("stats.copied = %v, want 1", stats["copied"])
	}
	years, ok := stats["years"].(map[string]interface{})
	if !ok || years["1999"].(float64) != 1 {
		t.Errorf("stats.years = %v, want 1999:1", stats["years"])
	}
}
