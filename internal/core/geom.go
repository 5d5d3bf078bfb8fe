// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It has no external dependencies (in
// particular no Bubble Tea) so the simulation stays pure and testable.
package core

// Point is an integer cell position on the playfield.
// Collisions are exact: two entities collide only when their Points are equal.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
