package jobs

import (
	"encoding/json"
	"os"
)

// Snapshot is a point-in-time export of platform data the assistant can
// interpolate into replies.
type Snapshot struct {
	Jobs      []*Job            `json:"jobs,omitempty"`
	Companies []*Company        `json:"companies,omitempty"`
	Fields    []*FieldAggregate `json:"fields,omitempty"`
	Salary    *SalaryStats      `json:"salary,omitempty"`
}

// LoadSnapshot reads a snapshot from a JSON file. An empty file yields an
// empty snapshot rather than an error.
func LoadSnapshot(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Snapshot{}, nil
	}

	var snapshot Snapshot
	if err := json.NewDecoder(file).Decode(&snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
