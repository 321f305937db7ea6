package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/timetable"
)

// Defaults for settings that are not in the config file.
const (
	DefaultDataDir    = "data"
	DefaultListenAddr = ":3000"
	DefaultTimezone   = "Asia/Kolkata"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataDir         string            `json:"data_dir,omitempty"`
	DirectorySource string            `json:"directory_source,omitempty"`
	ScheduleSource  string            `json:"schedule_source,omitempty"`
	ExamSources     map[string]string `json:"exam_sources,omitempty"`

	// ExamShifts maps an exam cycle to shift windows, e.g.
	// {"endsem": {"Evening": "15:00-18:00"}}. Missing shifts fall back to the
	// two-hour default.
	ExamShifts map[string]map[string]string `json:"exam_shifts,omitempty"`

	Timezone      string   `json:"timezone,omitempty"`
	ListenAddr    string   `json:"listen_addr,omitempty"`
	TelegramToken string   `json:"telegram_token,omitempty"`
	OptOutRolls   []string `json:"opt_out_rolls,omitempty"`

	SavedStudents []string `json:"saved_students,omitempty"`
	AccentColor   string   `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.schedfinder.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".schedfinder.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// dataDir resolves the dataset directory: env, then file, then default.
func (c *AppConfig) dataDir() string {
	return getEnv("SCHEDFINDER_DATA_DIR", firstNonEmpty(c.DataDir, DefaultDataDir))
}

// Addr is the HTTP listen address.
func (c *AppConfig) Addr() string {
	return getEnv("SCHEDFINDER_ADDR", firstNonEmpty(c.ListenAddr, DefaultListenAddr))
}

// Token is the Telegram bot token.
func (c *AppConfig) Token() string {
	return getEnv("TELEGRAM_TOKEN", c.TelegramToken)
}

// Location loads the timezone used for "now" and for calendar export.
func (c *AppConfig) Location() (*time.Location, error) {
	name := getEnv("SCHEDFINDER_TZ", firstNonEmpty(c.Timezone, DefaultTimezone))
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Sources builds dataset sources. Explicit sources win over files in the
// data directory.
func (c *AppConfig) Sources() dataset.Sources {
	dir := c.dataDir()

	src := dataset.Sources{
		Directory: firstNonEmpty(c.DirectorySource, filepath.Join(dir, "nameMap.json")),
		Schedule:  firstNonEmpty(c.ScheduleSource, filepath.Join(dir, "schedule.json")),
		Exams: map[dataset.Cycle]string{
			dataset.CycleMidsem: filepath.Join(dir, "midSemSchdl.json"),
			dataset.CycleEndsem: filepath.Join(dir, "endSemSchdl.json"),
		},
	}

	for name, source := range c.ExamSources {
		cycle, err := dataset.ParseCycle(name)
		if err != nil || source == "" {
			continue
		}
		src.Exams[cycle] = source
	}
	return src
}

// ShiftTable returns the shift windows for an exam cycle.
func (c *AppConfig) ShiftTable(cycle dataset.Cycle) (timetable.ShiftTable, error) {
	table := timetable.ShiftTable{}
	for k, v := range timetable.DefaultShifts {
		table[k] = v
	}

	for shift, window := range c.ExamShifts[string(cycle)] {
		r, err := parseWindow(window)
		if err != nil {
			return nil, fmt.Errorf("exam_shifts.%s.%s: %w", cycle, shift, err)
		}
		key := timetable.Shift(shift)
		for existing := range table {
			if strings.EqualFold(string(existing), shift) {
				key = existing
			}
		}
		table[key] = r
	}
	return table, nil
}

// parseWindow reads "15:00-18:00" (spaces and en dashes allowed).
func parseWindow(s string) (timetable.TimeRange, error) {
	s = strings.ReplaceAll(s, "–", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return timetable.TimeRange{}, fmt.Errorf("expected HH:MM-HH:MM, got %q", s)
	}

	start, err := timetable.ParseClock(parts[0])
	if err != nil {
		return timetable.TimeRange{}, err
	}
	end, err := timetable.ParseClock(parts[1])
	if err != nil {
		return timetable.TimeRange{}, err
	}
	if end <= start {
		return timetable.TimeRange{}, fmt.Errorf("window %q ends before it starts", s)
	}
	return timetable.TimeRange{Start: start.String(), End: end.String()}, nil
}

// OptedOut reports whether a roll number asked to be hidden from lookups.
func (c *AppConfig) OptedOut(roll string) bool {
	roll = timetable.NormalizeRoll(roll)
	for _, r := range c.OptOutRolls {
		if timetable.NormalizeRoll(r) == roll {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
