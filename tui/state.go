// Package tui provides the interactive terminal front end.
package tui

type state int

const (
	inputState state = iota
	processingState
	resultsState
	errorState
)
