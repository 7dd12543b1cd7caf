package ideas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads an ideas file: either a bare JSON array or an object
// wrapping that array under an "ideas" key. Any other shape is a fatal
// error for the report stage; there is no partial recovery.
func Load(path string) ([]Idea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ideas file: %w", err)
	}

	// A JSON null unmarshals into a nil slice without error; only an
	// actual array counts as a list here.
	var list []Idea
	if err := json.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	var wrapper struct {
		Ideas []Idea `json:"ideas"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Ideas != nil {
		return wrapper.Ideas, nil
	}

	return nil, fmt.Errorf("ideas file %s must contain a list of ideas or an object with an \"ideas\" list", path)
}

// Save writes the ideas as an indented bare JSON array.
func Save(path string, list []Idea) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ideas: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ideas file: %w", err)
	}

	return nil
}
