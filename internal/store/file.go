package store

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/reportledger/internal/model"
)

// LoadFile reads a YAML data file and returns a repository seeded with its
// reports. Every record must have a unique positive id, a known status and a
// known category.
func LoadFile(filePath string) (*Memory, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read file '%s': %w", filePath, err)
	}

	ledger, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not load '%s': %w", filePath, err)
	}
	return NewMemory(ledger.Reports...), nil
}

// Parse decodes and checks a YAML data document.
func Parse(data []byte) (model.Ledger, error) {
	var ledger model.Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		safeData, _ := json.Marshal(truncate(string(data), 200))
		return model.Ledger{}, fmt.Errorf("could not parse YAML: %w. Content: %s", err, safeData)
	}

	seen := make(map[int]bool, len(ledger.Reports))
	for i, r := range ledger.Reports {
		if r.ID <= 0 {
			return model.Ledger{}, fmt.Errorf("report #%d: id must be positive, got %d", i+1, r.ID)
		}
		if seen[r.ID] {
			return model.Ledger{}, fmt.Errorf("report #%d: duplicate id %d", i+1, r.ID)
		}
		seen[r.ID] = true
		if !r.Status.Valid() {
			return model.Ledger{}, fmt.Errorf("report %d: unknown status %q", r.ID, r.Status)
		}
		if !model.ValidCategory(r.Category) {
			return model.Ledger{}, fmt.Errorf("report %d: unknown category %q", r.ID, r.Category)
		}
	}
	return ledger, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
