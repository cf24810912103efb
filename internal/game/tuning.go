package game

// Tuning holds every gameplay constant. Distances are world units, rates
// are per tick unless the field says seconds.
type Tuning struct {
	TickRate int // ticks per second

	Gravity      float64
	JumpVelocity float64 // negative is up
	JumpCost     float64
	MaxEnergy    float64
	EnergyRegen  float64 // per tick while grounded

	TransformCooldown float64 // seconds

	BaseSpeed      float64
	SpeedInterval  float64 // seconds of play per +1 speed
	DistanceFactor float64 // distance gained per unit of speed per tick

	ObstacleChance float64 // per tick
	CoinChance     float64 // per tick
	ObstacleMinW   float64
	ObstacleMaxW   float64
	ObstacleMinH   float64
	ObstacleMaxH   float64
	CoinSize       float64
	CoinValue      int
	CoinLift       float64 // lowest coin top, measured up from the ground
	CoinBand       float64 // random extra height above CoinLift
	CoinSpin       float64 // radians per tick, visual only

	PassScore int // awarded per obstacle that leaves the screen

	PlayerX float64
	PlayerW float64
	PlayerH float64

	MaxObstacles int
	MaxCoins     int
}

// DefaultTuning returns the standard game feel at 60 TPS.
func DefaultTuning() Tuning {
	return Tuning{
		TickRate: 60,

		Gravity:      0.8,
		JumpVelocity: -20,
		JumpCost:     20,
		MaxEnergy:    100,
		EnergyRegen:  0.5,

		TransformCooldown: 2,

		BaseSpeed:      5,
		SpeedInterval:  30,
		DistanceFactor: 0.1,

		ObstacleChance: 0.02,
		CoinChance:     0.01,
		ObstacleMinW:   50,
		ObstacleMaxW:   100,
		ObstacleMinH:   50,
		ObstacleMaxH:   150,
		CoinSize:       30,
		CoinValue:      1,
		CoinLift:       100,
		CoinBand:       200,
		CoinSpin:       0.1,

		PassScore: 10,

		PlayerX: 100,
		PlayerW: 80,
		PlayerH: 120,

		MaxObstacles: 32,
		MaxCoins:     32,
	}
}

// Dt returns the length of one tick in seconds.
func (t Tuning) Dt() float64 { return 1 / float64(t.TickRate) }
