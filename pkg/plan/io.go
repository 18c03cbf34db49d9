package plan

import (
	"encoding/json"
	"os"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
)

// ReadFile loads a plan document from disk.
func ReadFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Plan{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
	}
	if err != nil {
		return Plan{}, err
	}
	return Unmarshal(data)
}

// WriteFile writes a plan document to disk with indentation for humans.
func WriteFile(p Plan, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadSolutionFile loads a solved layout from disk.
func ReadSolutionFile(path string) (Solution, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Solution{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "solution file %s", path)
	}
	if err != nil {
		return Solution{}, err
	}
	return UnmarshalSolution(data)
}

// WriteSolutionFile writes a solved layout to disk with indentation.
func WriteSolutionFile(s Solution, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
