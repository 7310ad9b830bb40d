package entity

import (
	"grid-snake/game/types"
)

// Segment is one body cell. Pos is the last committed cell, Target the cell
// it moves into during the current turn.
type Segment struct {
	Pos    types.Point
	Target types.Point
}

// Snake keeps its segments ordered tail to head: Body[0] is the tail and
// Body[len(Body)-1] is the head.
type Snake struct {
	Body []Segment
}

// NewSnake builds the start chain centred on the grid and heading right.
// Every segment targets the cell of its head-ward neighbour.
func NewSnake(grid types.Grid) *Snake {
	head := types.Point{X: grid.Width / 2, Y: grid.Height / 2}
	dir := types.Right.ToPoint()

	body := make([]Segment, types.InitialSegments)
	for i := range body {
		back := len(body) - 1 - i
		pos := types.Point{X: head.X - back*dir.X, Y: head.Y - back*dir.Y}
		body[i] = Segment{Pos: pos, Target: pos.Add(dir)}
	}
	return &Snake{Body: body}
}

func (s *Snake) headIndex() int {
	return len(s.Body) - 1
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// GetHead returns the committed cell of the head.
func (s *Snake) GetHead() types.Point {
	return s.Body[s.headIndex()].Pos
}

// GetHeadTarget returns the cell the head is moving into.
func (s *Snake) GetHeadTarget() types.Point {
	return s.Body[s.headIndex()].Target
}

// SetHeadTarget points the head at the cell one step along dir.
func (s *Snake) SetHeadTarget(dir types.Direction) {
	h := &s.Body[s.headIndex()]
	h.Target = h.Pos.Add(dir.ToPoint())
}

// Advance commits one turn of motion. Each segment moves onto its target and
// every non-head segment then takes the target its head-ward neighbour had
// before the commit. The head keeps its old target until SetHeadTarget.
func (s *Snake) Advance() {
	// Walking tail to head reads Body[i+1].Target before it is touched.
	for i := 0; i < s.headIndex(); i++ {
		s.Body[i].Pos = s.Body[i].Target
		s.Body[i].Target = s.Body[i+1].Target
	}
	h := &s.Body[s.headIndex()]
	h.Pos = h.Target
}

// CheckSelfCollision reports whether any non-head segment sits on pos.
func (s *Snake) CheckSelfCollision(pos types.Point) bool {
	for _, seg := range s.Body[:s.headIndex()] {
		if seg.Pos == pos {
			return true
		}
	}
	return false
}

// Grow adds a tail segment parked on the current tail cell so that it
// stretches out behind the old tail during the following turn.
func (s *Snake) Grow() {
	tail := s.Body[0].Pos
	s.Body = append([]Segment{{Pos: tail, Target: tail}}, s.Body...)
}

// Interpolate returns the display position of every segment, tail first,
// at fraction t of the current turn. It does not modify the snake.
func (s *Snake) Interpolate(t float32) []types.Vec2 {
	out := make([]types.Vec2, len(s.Body))
	for i, seg := range s.Body {
		out[i] = types.Lerp(seg.Pos, seg.Target, t)
	}
	return out
}
