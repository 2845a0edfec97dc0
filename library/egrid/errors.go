package egrid

import "fmt"

// This module contains common errors emitted from Subplot and Grid methods

type ErrUnknownCurve struct {
	Subplot, Label string
}

func (e ErrUnknownCurve) Error() string {
	return fmt.Sprintf("subplot %q has no curve %q", e.Subplot, e.Label)
}

type ErrNoSubplots struct{}

func (e ErrNoSubplots) Error() string { return "grid needs at least one subplot" }

type ErrGridClosed struct{}

func (e ErrGridClosed) Error() string { return "grid is closed" }

type ErrUnknownFormat struct {
	format string
}

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown image format %q, must be one of png, jpeg, bmp", e.format)
}

type ErrDuplicateLabel struct {
	Subplot, Label string
}

func (e ErrDuplicateLabel) Error() string {
	return fmt.Sprintf("subplot %q lists curve %q more than once", e.Subplot, e.Label)
}
