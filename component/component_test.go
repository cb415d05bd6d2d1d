package component

import "testing"

func TestNewCharacterStandsOnSurface(t *testing.T) {
	c := NewCharacter(160, 30, 40, 360)
	if c.Bottom() != 360 {
		t.Errorf("expected bottom 360, got %v", c.Bottom())
	}
	if !c.Grounded {
		t.Error("new character should be grounded")
	}
	if c.VY != 0 {
		t.Errorf("expected zero velocity, got %v", c.VY)
	}
}

func TestPlatformShiftMovesOwnedObstacles(t *testing.T) {
	p := NewPlatform(100, 300, 200, 24, "medium")
	p.Obstacles = append(p.Obstacles, NewObstacle(ObstacleGround, 120, 276, 24, 24))
	p.Aerials = append(p.Aerials, NewObstacle(ObstacleAerial, 150, 200, 28, 20))

	p.Shift(-30)

	if p.X != 70 {
		t.Errorf("platform X: expected 70, got %v", p.X)
	}
	if p.Obstacles[0].Box.X != 90 {
		t.Errorf("ground obstacle X: expected 90, got %v", p.Obstacles[0].Box.X)
	}
	if p.Aerials[0].Box.X != 120 {
		t.Errorf("aerial obstacle X: expected 120, got %v", p.Aerials[0].Box.X)
	}
	if p.Right() != 270 {
		t.Errorf("right edge: expected 270, got %v", p.Right())
	}
}

func TestPlatformHazardsSkipsInvisibleAndStops(t *testing.T) {
	p := NewPlatform(0, 300, 300, 24, "big")
	hidden := NewObstacle(ObstacleGround, 10, 276, 24, 24)
	hidden.Visible = false
	p.Obstacles = []*Obstacle{hidden, NewObstacle(ObstacleGround, 100, 276, 24, 24)}
	p.Aerials = []*Obstacle{NewObstacle(ObstacleAerial, 150, 200, 28, 20)}

	var seen []ObstacleKind
	p.Hazards(func(o *Obstacle) bool {
		seen = append(seen, o.Kind)
		return true
	})
	if len(seen) != 2 || seen[0] != ObstacleGround || seen[1] != ObstacleAerial {
		t.Errorf("unexpected hazard walk: %v", seen)
	}

	count := 0
	p.Hazards(func(o *Obstacle) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("expected early stop after 1, got %d", count)
	}
}

func TestWorldShiftAndCompact(t *testing.T) {
	w := &World{
		Character: NewCharacter(160, 30, 40, 360),
		SpawnX:    900,
	}
	gone := NewPlatform(-300, 300, 100, 24, "thin")
	gone.Visible = false
	kept := NewPlatform(200, 300, 150, 24, "thin")
	kept.Obstacles = []*Obstacle{NewObstacle(ObstacleGround, 220, 276, 24, 24)}
	w.Platforms = []*Platform{gone, kept}

	airGone := NewObstacle(ObstacleAir, -50, 150, 26, 26)
	airGone.Visible = false
	w.Air = []*Obstacle{airGone, NewObstacle(ObstacleAir, 400, 150, 26, 26)}

	w.Shift(-10)
	if w.SpawnX != 890 {
		t.Errorf("spawn cursor: expected 890, got %v", w.SpawnX)
	}
	if kept.X != 190 {
		t.Errorf("platform X: expected 190, got %v", kept.X)
	}
	if w.Air[1].Box.X != 390 {
		t.Errorf("air obstacle X: expected 390, got %v", w.Air[1].Box.X)
	}

	w.Compact()
	if len(w.Platforms) != 1 || w.Platforms[0] != kept {
		t.Errorf("expected only visible platform to remain, got %d", len(w.Platforms))
	}
	if len(w.Air) != 1 || w.Air[0].Box.X != 390 {
		t.Errorf("expected only visible air obstacle to remain, got %d", len(w.Air))
	}
	if w.GroundObstacles() != 1 {
		t.Errorf("expected 1 ground obstacle, got %d", w.GroundObstacles())
	}
}
