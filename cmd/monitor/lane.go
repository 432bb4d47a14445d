package main

import "github.com/rhuynh06/motion-indicator/internal/domain"

// Lane is the player position driven by the status stream.
// There are two lanes; moves past either edge are clamped.
type Lane int

const (
	LaneLeft Lane = iota
	LaneRight
)

func (l Lane) String() string {
	if l == LaneRight {
		return "right"
	}
	return "left"
}

// Move steps one lane towards the reported direction.
// Center and idle leave the lane unchanged.
func (l Lane) Move(s domain.State) Lane {
	switch s {
	case domain.StateLeft:
		if l > LaneLeft {
			return l - 1
		}
	case domain.StateRight:
		if l < LaneRight {
			return l + 1
		}
	}
	return l
}
