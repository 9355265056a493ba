package main

import (
	"fmt"
)

type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

func parseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Forward, Reverse:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown step direction '%s' (want forward or reverse)", s)
}

// wrapIndex folds i into [0, n).
func wrapIndex(i, n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoAttributes
	}
	return ((i % n) + n) % n, nil
}

// Slider is the range input state. Value always mirrors the selected index.
type Slider struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Value int `json:"value"`
}

// SequenceControls are the step buttons and the range slider. Every change
// goes through the slider value and then the sync engine.
type SequenceControls struct {
	state  *MapState
	Slider Slider
}

func NewSequenceControls(state *MapState) *SequenceControls {
	return &SequenceControls{
		state: state,
		Slider: Slider{
			Min:   0,
			Max:   len(state.Attributes) - 1,
			Value: state.Index(),
		},
	}
}

// Step moves one attribute in dir, wrapping at both ends.
func (c *SequenceControls) Step(dir Direction) (int, error) {
	next := c.Slider.Value
	switch dir {
	case Forward:
		next++
	case Reverse:
		next--
	default:
		return c.Slider.Value, fmt.Errorf("unknown step direction '%s'", dir)
	}
	idx, err := wrapIndex(next, len(c.state.Attributes))
	if err != nil {
		return c.Slider.Value, err
	}
	c.Slider.Value = idx
	return idx, c.state.SelectIndex(idx)
}

func (c *SequenceControls) Forward() (int, error) { return c.Step(Forward) }
func (c *SequenceControls) Reverse() (int, error) { return c.Step(Reverse) }

// Slide jumps to an absolute position. Out-of-range positions are rejected.
func (c *SequenceControls) Slide(value int) error {
	if value < c.Slider.Min || value > c.Slider.Max {
		return fmt.Errorf("%w: slider value %d not in [%d, %d]", ErrIndexOutOfRange, value, c.Slider.Min, c.Slider.Max)
	}
	c.Slider.Value = value
	return c.state.SelectIndex(value)
}
