package model

import "time"

// GroupReport describes one resolved tag-pair group for a target.
type GroupReport struct {
	StartTag string `yaml:"start_tag"`
	Files    int    `yaml:"files"`
}

// TargetReport summarizes what one injection pass did to a single target.
type TargetReport struct {
	Target          Path          `yaml:"target"`
	Groups          []GroupReport `yaml:"groups,omitempty"`
	RegionsInjected int           `yaml:"regions_injected"`
	FilesInjected   int           `yaml:"files_injected"`
	RegionsCleared  int           `yaml:"regions_cleared"`
	Changed         bool          `yaml:"changed"`
}

// FileDiff is a unified diff of what an injection pass would change in one target.
type FileDiff struct {
	Target Path
	Diff   string
}

// RunReport is the outcome of a whole run across all target documents.
type RunReport struct {
	StartedAt time.Time      `yaml:"started_at"`
	Sources   int            `yaml:"sources"`
	Targets   []TargetReport `yaml:"targets"`
}

// TotalInjected returns the number of file references injected across all targets.
func (r RunReport) TotalInjected() int {
	total := 0
	for _, t := range r.Targets {
		total += t.FilesInjected
	}

	return total
}

// ChangedTargets returns how many targets were actually modified.
func (r RunReport) ChangedTargets() int {
	count := 0

	for _, t := range r.Targets {
		if t.Changed {
			count++
		}
	}

	return count
}
