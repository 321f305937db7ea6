package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MergedScheduleName is the file MergeDayFiles writes.
const MergedScheduleName = "schedule.json"

// MergeDayFiles folds per-weekday files (monday.json, tuesday.json, ...) in
// dir into a single schedule.json keyed by the file name up to its first dot.
// It returns the weekday keys that were merged.
func MergeDayFiles(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	merged := make(map[string]DayRecord)
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || name == MergedScheduleName || filepath.Ext(name) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var day DayRecord
		if err := json.Unmarshal(data, &day); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		key := strings.ToLower(strings.SplitN(name, ".", 2)[0])
		merged[key] = day
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schedule: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MergedScheduleName), out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write schedule: %w", err)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
