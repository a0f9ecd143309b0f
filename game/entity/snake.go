package entity

import (
	"snake-classic/game/types"
)

// Snake is an ordered body, head first, plus its committed and pending directions
type Snake struct {
	Body          []types.Point
	heading       types.Direction
	nextDirection types.Direction
}

// NewSnake builds a snake from body cells given head first
func NewSnake(body ...types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b}
}

// NewHorizontalSnake lays out length cells leftward from head
func NewHorizontalSnake(head types.Point, length int) *Snake {
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{Body: body}
}

// Move prepends newHead
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether p is any body cell
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}

// Heading is the committed direction used by the last tick
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// NextDirection is the buffered intent for the next tick
func (s *Snake) NextDirection() types.Direction {
	return s.nextDirection
}

// SetHeading forces both committed and pending directions
func (s *Snake) SetHeading(dir types.Direction) {
	s.heading = dir
	s.nextDirection = dir
}

// SetNextDirection forces only the pending direction
func (s *Snake) SetNextDirection(dir types.Direction) {
	s.nextDirection = dir
}

// SetDirection buffers dir for the next tick. 180-degree turns against the
// committed heading are dropped, as are non-cardinal values.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.IsCardinal() {
		return false
	}
	if !s.heading.IsNeutral() && dir == s.heading.Opposite() {
		return false
	}
	s.nextDirection = dir
	return true
}

// CommitDirection promotes the pending direction and returns it
func (s *Snake) CommitDirection() types.Direction {
	s.heading = s.nextDirection
	return s.heading
}

// NextHead is the cell the head would enter on the committed heading
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.heading)
}
