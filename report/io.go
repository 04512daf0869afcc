package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a report to a JSON file
func WriteJSON(rep *Report, filename string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadJSON reads a report from a JSON file
func ReadJSON(filename string) (*Report, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &rep, nil
}

// ToJSON converts a report to a JSON string
func ToJSON(rep *Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses a report from a JSON string
func FromJSON(jsonStr string) (*Report, error) {
	var rep Report
	if err := json.Unmarshal([]byte(jsonStr), &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
