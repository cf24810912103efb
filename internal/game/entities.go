package game

import "github.com/mlange-42/ark/ecs"

// Position is the top-left corner of an entity's box.
type Position struct {
	X, Y float64
}

// Extent is the size of an entity's box.
type Extent struct {
	W, H float64
}

// ObstacleKind selects an obstacle's look. All kinds collide the same way.
type ObstacleKind uint8

const (
	ObstacleRock ObstacleKind = iota
	ObstacleRobot
	ObstacleLaser
	obstacleKindCount
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleRock:
		return "rock"
	case ObstacleRobot:
		return "robot"
	case ObstacleLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Color returns the obstacle body colour as #rrggbb.
func (k ObstacleKind) Color() string {
	switch k {
	case ObstacleRock:
		return "#666666"
	case ObstacleRobot:
		return "#444444"
	case ObstacleLaser:
		return "#ff4444"
	default:
		return "#555555"
	}
}

// Obstacle marks an entity as a lethal obstacle.
type Obstacle struct {
	Kind ObstacleKind
}

// Coin marks an entity as a collectible.
type Coin struct {
	Value    int
	Rotation float64
}

// entities stores obstacles and coins in an ECS world. Entities are never
// removed while a query is open; removals are collected in dead first.
type entities struct {
	world *ecs.World

	obstacleMap *ecs.Map3[Position, Extent, Obstacle]
	coinMap     *ecs.Map3[Position, Extent, Coin]

	obstacleFilter *ecs.Filter3[Position, Extent, Obstacle]
	coinFilter     *ecs.Filter3[Position, Extent, Coin]

	obstacles int
	coins     int

	dead []ecs.Entity
}

func newEntities() *entities {
	w := ecs.NewWorld(64)
	return &entities{
		world:          w,
		obstacleMap:    ecs.NewMap3[Position, Extent, Obstacle](w),
		coinMap:        ecs.NewMap3[Position, Extent, Coin](w),
		obstacleFilter: ecs.NewFilter3[Position, Extent, Obstacle](w),
		coinFilter:     ecs.NewFilter3[Position, Extent, Coin](w),
	}
}

func (e *entities) addObstacle(kind ObstacleKind, x, y, w, h float64) {
	e.obstacleMap.NewEntity(&Position{X: x, Y: y}, &Extent{W: w, H: h}, &Obstacle{Kind: kind})
	e.obstacles++
}

func (e *entities) addCoin(x, y, size float64, value int) {
	e.coinMap.NewEntity(&Position{X: x, Y: y}, &Extent{W: size, H: size}, &Coin{Value: value})
	e.coins++
}

// scrollObstacles moves every obstacle left by dx and removes the ones whose
// right edge has crossed x=0. It returns how many were removed.
func (e *entities) scrollObstacles(dx float64) int {
	e.dead = e.dead[:0]
	q := e.obstacleFilter.Query()
	for q.Next() {
		pos, ext, _ := q.Get()
		pos.X -= dx
		if pos.X+ext.W < 0 {
			e.dead = append(e.dead, q.Entity())
		}
	}
	for _, ent := range e.dead {
		e.world.RemoveEntity(ent)
	}
	e.obstacles -= len(e.dead)
	return len(e.dead)
}

// scrollCoins moves and spins every coin and removes the ones that left the
// screen.
func (e *entities) scrollCoins(dx, spin float64) {
	e.dead = e.dead[:0]
	q := e.coinFilter.Query()
	for q.Next() {
		pos, ext, coin := q.Get()
		pos.X -= dx
		coin.Rotation += spin
		if pos.X+ext.W < 0 {
			e.dead = append(e.dead, q.Entity())
		}
	}
	for _, ent := range e.dead {
		e.world.RemoveEntity(ent)
	}
	e.coins -= len(e.dead)
}

// hitObstacle reports whether box overlaps any obstacle.
func (e *entities) hitObstacle(box Rect) bool {
	q := e.obstacleFilter.Query()
	for q.Next() {
		pos, ext, _ := q.Get()
		if box.Overlaps(Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}) {
			q.Close()
			return true
		}
	}
	return false
}

// collectCoins removes every coin overlapping box and returns their values
// in query order.
func (e *entities) collectCoins(box Rect) []int {
	e.dead = e.dead[:0]
	var values []int
	q := e.coinFilter.Query()
	for q.Next() {
		pos, ext, coin := q.Get()
		if box.Overlaps(Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}) {
			e.dead = append(e.dead, q.Entity())
			values = append(values, coin.Value)
		}
	}
	for _, ent := range e.dead {
		e.world.RemoveEntity(ent)
	}
	e.coins -= len(e.dead)
	return values
}

func (e *entities) obstacleViews() []ObstacleView {
	out := make([]ObstacleView, 0, e.obstacles)
	q := e.obstacleFilter.Query()
	for q.Next() {
		pos, ext, obs := q.Get()
		out = append(out, ObstacleView{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H, Kind: obs.Kind})
	}
	return out
}

func (e *entities) coinViews() []CoinView {
	out := make([]CoinView, 0, e.coins)
	q := e.coinFilter.Query()
	for q.Next() {
		pos, ext, coin := q.Get()
		out = append(out, CoinView{X: pos.X, Y: pos.Y, Size: ext.W, Rotation: coin.Rotation, Value: coin.Value})
	}
	return out
}
