package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode decides whether batch runs get the interactive progress view.
// Auto turns it on only when stdout is a terminal, so piped and CI
// invocations stay line-oriented.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on", "always":
		return uiModeOn, nil
	case "off", "never":
		return uiModeOff, nil
	}
	return "", fmt.Errorf("--ui must be auto, on, or off; got %q", value)
}

func shouldUseTUI(mode uiMode) bool {
	if mode == uiModeAuto {
		return isTerminal(os.Stdout)
	}
	return mode == uiModeOn
}
