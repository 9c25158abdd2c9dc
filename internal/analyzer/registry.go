package analyzer

import "fmt"

// NewDetector creates a detector for the given background mode.
func NewDetector(mode string) (*BoxDetector, error) {
	switch mode {
	case ModeAuto, "":
		return NewBoxDetector(), nil
	case ModeAlpha, ModeCorners:
		d := NewBoxDetector()
		d.Mode = mode
		return d, nil
	default:
		return nil, fmt.Errorf("unknown background mode: %s", mode)
	}
}
