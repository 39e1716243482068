package dice

import (
	"sync"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// ScriptedRoller replays fixed faces in order. It satisfies the toolkit
// Roller interface and is meant for tests and demos that need forced results.
type ScriptedRoller struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewScriptedRoller replays faces in order
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Roll returns the next scripted face, ignoring size
func (s *ScriptedRoller) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.faces) {
		return 0, errors.Internalf("scripted roller exhausted after %d faces", len(s.faces))
	}
	face := s.faces[s.next]
	s.next++
	return face, nil
}

// RollN returns the next count scripted faces
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// Remaining reports how many faces have not been consumed
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces) - s.next
}
