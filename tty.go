package main

import (
	"os"

	"golang.org/x/term"
)

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals and the
// size of the first one that is.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	var details ttyDetails
	details.Probes = make([]ttyProbeResult, 0, len(files))
	for i, f := range files {
		details.Probes = append(details.Probes, probe(names[i], f))
	}
	for _, p := range details.Probes {
		if p.IsTerminal && p.Error == "" {
			details.Detected = &ttyDetected{Source: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	return details
}

func probe(name string, f *os.File) ttyProbeResult {
	result := ttyProbeResult{Name: name}
	if f == nil {
		return result
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return result
	}
	result.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width, result.Height = width, height
	return result
}
