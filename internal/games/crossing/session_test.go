package crossing

import (
	"reflect"
	"testing"
)

const frame = 1.0 / 60

func newTestSession(enemies int) *Session {
	return NewSession(DefaultBoard(), 3, enemies, 1)
}

// parkEnemy pins enemy i at a fixed spot so collisions are predictable.
func parkEnemy(s *Session, i int, x float64, row int) {
	s.enemies[i] = Enemy{X: x, Row: row, Speed: 0}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(3)

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if len(s.Enemies()) != 3 {
		t.Errorf("len(Enemies()) = %d, expected 3", len(s.Enemies()))
	}
	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}

	before := s.Snapshot()
	if r := s.Tick(frame); r.Advanced {
		t.Error("Tick should not advance an idle session")
	}
	if s.Move(DirUp) {
		t.Error("Move should be ignored while idle")
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("idle session changed state")
	}
}

func TestSessionWin(t *testing.T) {
	s := newTestSession(0)
	s.Start()

	for i := 0; i < 4; i++ {
		s.Move(DirUp)
	}
	if r := s.Tick(frame); r.Ended {
		t.Fatal("game should not end before the goal row")
	}

	s.Move(DirUp)
	r := s.Tick(frame)
	if !r.Ended || r.Outcome != OutcomeWon {
		t.Errorf("Tick() = %+v, expected a win", r)
	}
	if s.Phase() != PhaseEnded || s.Outcome() != OutcomeWon {
		t.Errorf("state = %v/%v, expected ended/won", s.Phase(), s.Outcome())
	}
}

func TestSessionLoss(t *testing.T) {
	s := newTestSession(1)
	s.Start()

	for i := 1; i <= 3; i++ {
		parkEnemy(s, 0, 202, 3)
		s.Move(DirUp)
		s.Move(DirUp)

		r := s.Tick(0)
		if !r.Collided || r.HitEnemy != 0 {
			t.Fatalf("collision %d: Tick() = %+v, expected a hit", i, r)
		}
		p := s.Player()
		if p.Col != 2 || p.Row != 5 {
			t.Errorf("collision %d: player at (%d, %d), expected home (2, 5)", i, p.Col, p.Row)
		}
		if p.Collisions != i {
			t.Errorf("Collisions = %d, expected %d", p.Collisions, i)
		}
		if i < 3 && r.Ended {
			t.Fatalf("game ended after %d collisions", i)
		}
	}

	if s.Outcome() != OutcomeLost || s.Phase() != PhaseEnded {
		t.Errorf("state = %v/%v, expected ended/lost", s.Phase(), s.Outcome())
	}
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
}

func TestSessionOneCollisionPerTick(t *testing.T) {
	s := newTestSession(3)
	s.Start()
	parkEnemy(s, 0, 202, 4)
	parkEnemy(s, 1, 210, 4)
	parkEnemy(s, 2, 190, 4)
	s.Move(DirUp)

	r := s.Tick(0)
	if !r.Collided || r.HitEnemy != 0 {
		t.Errorf("Tick() = %+v, expected a hit on enemy 0", r)
	}
	if s.Player().Collisions != 1 {
		t.Errorf("Collisions = %d, expected 1", s.Player().Collisions)
	}
}

func TestLossBeatsWin(t *testing.T) {
	s := newTestSession(0)
	s.Start()
	s.player.Row = s.board.GoalRow
	s.player.Collisions = s.lifeLimit

	if !s.checkStatus() {
		t.Fatal("checkStatus() = false, expected the game to end")
	}
	if s.Outcome() != OutcomeLost {
		t.Errorf("Outcome() = %v, expected lost", s.Outcome())
	}
}

func TestEndedSessionIsFrozen(t *testing.T) {
	s := newTestSession(3)
	s.Start()
	for i := 0; i < 5; i++ {
		s.Move(DirUp)
	}
	s.Tick(frame)
	if s.Phase() != PhaseEnded {
		t.Fatalf("Phase() = %v, expected ended", s.Phase())
	}

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		if r := s.Tick(frame); r.Advanced {
			t.Fatal("Tick advanced an ended session")
		}
		if s.Move(DirDown) {
			t.Fatal("Move accepted after the game ended")
		}
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("ended session changed state")
	}
}

func TestSessionCommands(t *testing.T) {
	s := newTestSession(3)

	if s.Stop() {
		t.Error("Stop on an idle session should be a no-op")
	}
	if s.Reset() {
		t.Error("Reset on an idle session should be a no-op")
	}
	if !s.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if s.Start() {
		t.Error("Start while running should be a no-op")
	}

	s.Move(DirUp)
	s.player.Collisions = 2
	if !s.Reset() {
		t.Fatal("Reset while running should succeed")
	}
	p := s.Player()
	if p.Collisions != 0 || p.Row != 5 || !s.Running() {
		t.Errorf("after Reset: %+v running=%v, expected a fresh game", p, s.Running())
	}

	if !s.Stop() {
		t.Error("Stop while running should succeed")
	}
	if s.Stop() {
		t.Error("second Stop should be a no-op")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
}

func TestRestartFromEnded(t *testing.T) {
	tests := []struct {
		name    string
		restart func(*Session) bool
	}{
		{"start", (*Session).Start},
		{"reset", (*Session).Reset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(0)
			s.Start()
			for i := 0; i < 5; i++ {
				s.Move(DirUp)
			}
			s.Tick(frame)

			if !tc.restart(s) {
				t.Fatal("restart from ended should succeed")
			}
			if !s.Running() || s.Outcome() != OutcomeInProgress {
				t.Errorf("state = %v/%v, expected running/in progress", s.Phase(), s.Outcome())
			}
			if s.Player().Row != 5 {
				t.Errorf("player row = %d, expected 5", s.Player().Row)
			}
		})
	}
}

func TestStopFromEndedReturnsToIdle(t *testing.T) {
	s := newTestSession(0)
	s.Start()
	for i := 0; i < 5; i++ {
		s.Move(DirUp)
	}
	s.Tick(frame)

	if !s.Stop() {
		t.Fatal("Stop from ended should succeed")
	}
	if s.Phase() != PhaseIdle || s.Outcome() != OutcomeInProgress {
		t.Errorf("state = %v/%v, expected idle/in progress", s.Phase(), s.Outcome())
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(DefaultBoard(), 3, 3, 99)
		s.Start()
		dirs := []Direction{DirUp, DirLeft, DirUp, DirRight, DirDown, DirUp}
		for i := 0; i < 600; i++ {
			if i%50 == 0 {
				s.Move(dirs[(i/50)%len(dirs)])
			}
			s.Tick(frame)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and commands gave different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestEnemyCountIsFixed(t *testing.T) {
	s := newTestSession(4)
	s.Start()
	for i := 0; i < 2000 && s.Running(); i++ {
		s.Tick(frame)
		if n := len(s.Enemies()); n != 4 {
			t.Fatalf("tick %d: %d enemies, expected 4", i, n)
		}
	}
}

func TestLivesNeverNegative(t *testing.T) {
	s := newTestSession(0)
	s.player.Collisions = 10
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if snap := s.Snapshot(); snap.Lives != 0 {
		t.Errorf("Snapshot().Lives = %d, expected 0", snap.Lives)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(2)
	snap := s.Snapshot()
	snap.Enemies[0].X = 999

	if s.Enemies()[0].X == 999 {
		t.Error("Snapshot shares enemy storage with the session")
	}
}
