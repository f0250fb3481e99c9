// Package device simulates the wearable speech-therapy device.
package device

import "errors"

// ErrNotConnected is returned for actions that need a connected device.
var ErrNotConnected = errors.New("connect device first")

// Level is an indicator light brightness.
type Level int

// Light levels.
const (
	Off Level = iota
	Dim
	On
)

func (l Level) String() string {
	switch l {
	case On:
		return "on"
	case Dim:
		return "dim"
	default:
		return "off"
	}
}

// Lights is the state of the three indicator lights.
type Lights struct {
	Red    Level
	Yellow Level
	Green  Level
}

// Simulator tracks connection and touch state.
type Simulator struct {
	connected bool
	touching  bool
}

// Connect attaches the device and clears touch.
func (s *Simulator) Connect() {
	s.connected = true
	s.touching = false
}

// Disconnect detaches the device and clears touch.
func (s *Simulator) Disconnect() {
	s.connected = false
	s.touching = false
}

// ToggleTouch flips the touch sensor. The device must be connected.
func (s *Simulator) ToggleTouch() error {
	if !s.connected {
		return ErrNotConnected
	}
	s.touching = !s.touching
	return nil
}

// Connected reports whether the device is attached.
func (s *Simulator) Connected() bool {
	return s.connected
}

// Touching reports whether the touch sensor is active.
func (s *Simulator) Touching() bool {
	return s.touching
}

// RequireConnected returns ErrNotConnected when the device is detached.
func (s *Simulator) RequireConnected() error {
	if !s.connected {
		return ErrNotConnected
	}
	return nil
}

// Lights returns the indicator levels for the current state.
func (s *Simulator) Lights() Lights {
	l := Lights{Red: On, Yellow: Dim, Green: Off}
	if s.connected {
		l.Red = Off
		l.Yellow = Off
	}
	if s.touching {
		l.Yellow = Off
		l.Green = On
	}
	return l
}
