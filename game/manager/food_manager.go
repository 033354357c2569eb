package manager

import (
	"portfolio-arcade/game/entity"
	"portfolio-arcade/game/types"

	"golang.org/x/exp/rand"
)

// MaxFoodAttempts bounds rejection sampling before falling back to a scan of
// the free cells.
const MaxFoodAttempts = 1024

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a random free cell. ok is false only when the snake
// covers the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	for attempt := 0; attempt < MaxFoodAttempts; attempt++ {
		food := fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
	return fm.pickFreeCell(snake)
}

func (fm *FoodManager) randomCell() types.Point {
	return fm.grid.CellAt(
		fm.rng.Intn(fm.grid.Columns()),
		fm.rng.Intn(fm.grid.Rows()),
	)
}

func (fm *FoodManager) pickFreeCell(snake *entity.Snake) (types.Point, bool) {
	free := make([]types.Point, 0, fm.grid.Cells())
	for row := 0; row < fm.grid.Rows(); row++ {
		for col := 0; col < fm.grid.Columns(); col++ {
			p := fm.grid.CellAt(col, row)
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
