package materialize

import (
	"bytes"
	"fmt"
	"path/filepath"
)

// PlanStatus describes what Run would do to an existing target
type PlanStatus string

const (
	PlanNew       PlanStatus = "new"
	PlanOverwrite PlanStatus = "overwrite"
	PlanUnchanged PlanStatus = "unchanged"
)

// PlannedFile is the predicted effect of Run on one FileSpec
type PlannedFile struct {
	Path   string
	Status PlanStatus
}

// Plan inspects the target of every FileSpec without modifying anything
func (m *Materializer) Plan(specs []FileSpec) ([]PlannedFile, error) {
	planned := make([]PlannedFile, 0, len(specs))

	for _, spec := range specs {
		target := filepath.FromSlash(spec.Path)

		exists, err := m.fs.FileExists(target)
		if err != nil {
			return nil, err
		}
		if !exists {
			planned = append(planned, PlannedFile{Path: spec.Path, Status: PlanNew})
			continue
		}

		current, err := m.fs.ReadFile(target)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", spec.Path, err)
		}

		status := PlanOverwrite
		if bytes.Equal(current, []byte(spec.Content)) {
			status = PlanUnchanged
		}
		planned = append(planned, PlannedFile{Path: spec.Path, Status: status})
	}

	return planned, nil
}

// CountStatus returns how many planned files have the given status
func CountStatus(planned []PlannedFile, status PlanStatus) int {
	count := 0
	for _, p := range planned {
		if p.Status == status {
			count++
		}
	}
	return count
}
