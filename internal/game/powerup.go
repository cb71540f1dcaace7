package game

// PowerUpType identifies one of the five collectible effects.
type PowerUpType int

const (
	SpeedBoost PowerUpType = iota
	SlowDown
	ExtraPoints
	Grow
	Shrink

	powerUpTypeCount = 5
)

var powerUpNames = [powerUpTypeCount]string{
	"speed_boost", "slow_down", "extra_points", "grow", "shrink",
}

func (t PowerUpType) String() string {
	if t < SpeedBoost || t >= powerUpTypeCount {
		return "unknown"
	}
	return powerUpNames[t]
}

// PowerUp is the at-most-one collectible currently on the board.
type PowerUp struct {
	Position Position
	Type     PowerUpType
	Active   bool
}

// speedEffect tracks a running boost or slow. Kind and remaining ticks are
// cleared together; a nil effect means normal pace.
type speedEffect struct {
	kind      PowerUpType
	ticksLeft int
}
