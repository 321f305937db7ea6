package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/timetable"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "schedfinder-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.DataDir = "/srv/schedfinder"
	cfg.SavedStudents = []string{"Asha Rao", "Ravi Kumar"}
	cfg.ExamShifts = map[string]map[string]string{"endsem": {"Evening": "15:00-18:00"}}
	cfg.AccentColor = "205"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".schedfinder.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".schedfinder.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestSources(t *testing.T) {
	t.Setenv("SCHEDFINDER_DATA_DIR", "")

	cfg := &AppConfig{
		DataDir:     "/data",
		ExamSources: map[string]string{"EndSem": "https://example.org/endsem.json", "quiz": "ignored.json"},
	}
	src := cfg.Sources()

	if src.Directory != filepath.Join("/data", "nameMap.json") {
		t.Errorf("unexpected directory source: %s", src.Directory)
	}
	if src.Exams[dataset.CycleEndsem] != "https://example.org/endsem.json" {
		t.Errorf("expected explicit endsem source to win, got %s", src.Exams[dataset.CycleEndsem])
	}
	if src.Exams[dataset.CycleMidsem] != filepath.Join("/data", "midSemSchdl.json") {
		t.Errorf("unexpected midsem source: %s", src.Exams[dataset.CycleMidsem])
	}

	t.Setenv("SCHEDFINDER_DATA_DIR", "/override")
	if got := cfg.Sources().Schedule; got != filepath.Join("/override", "schedule.json") {
		t.Errorf("expected env override for data dir, got %s", got)
	}
}

func TestShiftTable(t *testing.T) {
	cfg := &AppConfig{ExamShifts: map[string]map[string]string{
		"endsem": {"Evening": "15:00 - 18:00"},
	}}

	mid, err := cfg.ShiftTable(dataset.CycleMidsem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(mid, timetable.DefaultShifts) {
		t.Errorf("expected midsem to use the default shifts, got %v", mid)
	}

	end, err := cfg.ShiftTable(dataset.CycleEndsem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end[timetable.ShiftEvening].String(); got != "15:00 - 18:00" {
		t.Errorf("expected extended evening window, got %s", got)
	}
	if got := end[timetable.ShiftMorning].String(); got != "10:30 - 12:30" {
		t.Errorf("expected default morning window, got %s", got)
	}

	bad := &AppConfig{ExamShifts: map[string]map[string]string{"midsem": {"Morning": "noon"}}}
	if _, err := bad.ShiftTable(dataset.CycleMidsem); err == nil {
		t.Errorf("expected malformed window to be rejected")
	}
}

func TestOptedOut(t *testing.T) {
	cfg := &AppConfig{OptOutRolls: []string{"2501ec15"}}
	if !cfg.OptedOut(" 2501EC15 ") {
		t.Errorf("expected roll to be opted out regardless of case")
	}
	if cfg.OptedOut("2301CS01") {
		t.Errorf("did not expect 2301CS01 to be opted out")
	}
}
