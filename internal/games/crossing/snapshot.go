package crossing

// Snapshot captures the complete session state for rendering, logging and
// determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Outcome    Outcome
	Lives      int
	LifeLimit  int
	Collisions int
	Player     Player
	Enemies    []Enemy
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Phase:      s.phase,
		Outcome:    s.outcome,
		Lives:      s.Lives(),
		LifeLimit:  s.lifeLimit,
		Collisions: s.player.Collisions,
		Player:     s.player,
		Enemies:    s.Enemies(),
	}
}
