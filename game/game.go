package game

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Screen is the top level state of a round.
type Screen int

const (
	Playing Screen = iota
	GameOver
)

func (s Screen) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

type Game struct {
	UUID         string // current round
	Config       Config
	Grid         types.Grid
	Snake        *entity.Snake
	Screen       Screen
	Score        int
	TurnDuration float32
	Timer        float32
	Cause        types.CollisionType
	StartTime    time.Time

	directionMgr *manager.DirectionManager
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
}

// Snapshot is a copy of the observable state of a game.
type Snapshot struct {
	Screen       Screen
	Score        int
	HighScore    int
	Heading      types.Direction
	Head         types.Point
	HeadTarget   types.Point
	Food         types.Point
	Length       int
	TurnDuration float32
	Cause        types.CollisionType
}

// NewGame starts the first round. cfg is expected to be valid.
func NewGame(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	grid := cfg.Grid()

	g := &Game{
		Config:       cfg,
		Grid:         grid,
		foodMgr:      manager.NewFoodManager(grid, seed),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
	}
	g.reset()
	return g
}

// Restart throws the current chain away and starts a new round.
func (g *Game) Restart() {
	g.reset()
	g.foodMgr.Respawn()
}

func (g *Game) reset() {
	g.UUID = uuid.NewString()
	g.Snake = entity.NewSnake(g.Grid)
	g.directionMgr = manager.NewDirectionManager(types.Right)
	g.Screen = Playing
	g.Score = 0
	g.TurnDuration = g.Config.InitialTurnDuration
	g.Timer = 0
	g.Cause = types.NoCollision
	g.StartTime = time.Now()
	glog.Infof("round %s started on %dx%d grid", g.UUID, g.Grid.Width, g.Grid.Height)
}

// Update advances the game by one host frame of dt seconds.
func (g *Game) Update(dt float32, in Input) {
	if g.Screen == GameOver {
		if in.Restart {
			g.Restart()
		}
		return
	}

	for _, dir := range in.Directions {
		if !g.directionMgr.Push(dir) {
			glog.V(2).Infof("round %s: dropped %v, queue full", g.UUID, dir)
		}
	}

	if g.Timer < g.TurnDuration {
		g.Timer += dt
		return
	}
	g.turn()
}

// turn moves the whole chain one cell and applies the rules.
func (g *Game) turn() {
	g.Timer = 0
	g.Snake.Advance()

	if g.collisionMgr.IsSelfCollision(g.Snake) {
		g.endRound(types.SelfCollision)
		return
	}

	if g.collisionMgr.IsFoodCollision(g.Snake.GetHead(), g.foodMgr.GetFood()) {
		g.eat()
	}

	heading, rejected := g.directionMgr.Next()
	if rejected {
		glog.V(2).Infof("round %s: reversal to %v ignored", g.UUID, heading.Opposite())
	}
	g.Snake.SetHeadTarget(heading)

	if g.collisionMgr.IsWallCollision(g.Snake.GetHeadTarget()) {
		g.endRound(types.WallCollision)
	}
}

func (g *Game) eat() {
	g.Snake.Grow()
	g.Score++
	g.TurnDuration *= g.Config.SpeedupRatio
	if g.TurnDuration < g.Config.MinTurnDuration {
		g.TurnDuration = g.Config.MinTurnDuration
	}
	food := g.foodMgr.Respawn()
	glog.V(2).Infof("round %s: ate food, score %d, length %d, next food %v, turn %.3fs",
		g.UUID, g.Score, g.Snake.Len(), food, g.TurnDuration)
}

func (g *Game) endRound(cause types.CollisionType) {
	g.Screen = GameOver
	g.Cause = cause
	best := g.stateMgr.AddRound(manager.RoundRecord{
		ID:        g.UUID,
		Score:     g.Score,
		Cause:     cause,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
	})
	glog.Infof("round %s over: %v collision, score %d, new best %v", g.UUID, cause, g.Score, best)
}

// Fraction is how far the current turn has progressed, in [0,1].
func (g *Game) Fraction() float32 {
	f := g.Timer / g.TurnDuration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SegmentPositions returns the interpolated display cell of every segment,
// tail first. Calling it does not change the game.
func (g *Game) SegmentPositions() []types.Vec2 {
	return g.Snake.Interpolate(g.Fraction())
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) GetHeading() types.Direction {
	return g.directionMgr.Heading()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Screen:       g.Screen,
		Score:        g.Score,
		HighScore:    g.stateMgr.GetHighScore(),
		Heading:      g.directionMgr.Heading(),
		Head:         g.Snake.GetHead(),
		HeadTarget:   g.Snake.GetHeadTarget(),
		Food:         g.foodMgr.GetFood(),
		Length:       g.Snake.Len(),
		TurnDuration: g.TurnDuration,
		Cause:        g.Cause,
	}
}
