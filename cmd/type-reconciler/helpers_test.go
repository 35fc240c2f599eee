package main

import (
	"gopkg.in/yaml.v3"

	"type-reconciler/internal/mapping"
)

func parseReport(data []byte) (*mapping.Report, error) {
	var r mapping.Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
