package controllers

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/pkg"
	"github.com/lkaiyu/richman-backend/platform/cache"
	"github.com/lkaiyu/richman-backend/platform/database"
	"github.com/lkaiyu/richman-backend/platform/game"
	"github.com/lkaiyu/richman-backend/platform/queries"
)

// lockedSource guards the shared generator: fiber runs handlers on
// concurrent goroutines and rand.Rand is not safe for parallel use.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// One logical writer per game state; the engine takes the generator
// explicitly so tests can pin a seed.
var rng = rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano())})

var redisPool = cache.CreateRedisPool()

type ActionDto struct {
	Game_id    string `json:"game_id"`
	Tile_id    int    `json:"tile_id"`
	Player_id  string `json:"player_id"`
	Company_id string `json:"company_id"`
	Shares     int    `json:"shares"`
	Numbers    []int  `json:"numbers"`
}

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	players := gameCreateDto.Players
	if len(players) == 0 {
		players = []string{"Player 1", "Computer AI"}
	}

	g := &models.Game{
		Id:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Status: "in progress",
	}
	if err := queries.CreateGame(g, db); err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	conn := redisPool.Get()
	defer conn.Close()

	state := game.NewGame(players)
	if err := queries.SaveState(g.Id, state, &conn); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": g.Id, "state": state})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	err := db.Model(&games).Where("status = ?", "in progress").Select()
	if err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return err
	}

	conn := redisPool.Get()
	defer conn.Close()

	// A joinable game needs both its record and a live snapshot.
	ok := queries.VerifyGame(verifyGameDto.Code, db) && queries.HasState(verifyGameDto.Code, &conn)
	return c.JSON(fiber.Map{"status": ok})
}

func GetState(c *fiber.Ctx) error {
	conn := redisPool.Get()
	defer conn.Close()

	state, err := queries.LoadState(c.Query("id"), &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(state)
}

// DeleteGame removes a finished or abandoned game: the record and its
// snapshot both go.
func DeleteGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	conn := redisPool.Get()
	defer conn.Close()

	queries.DeleteGame(c.Query("id"), db, &conn)
	return c.SendStatus(fiber.StatusNoContent)
}

// withState loads a game's snapshot, applies one transition, and saves it
// back. Every play endpoint goes through here.
func withState(c *fiber.Ctx, fn func(g *models.GameState, dto *ActionDto)) error {
	dto := new(ActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn := redisPool.Get()
	defer conn.Close()

	state, err := queries.LoadState(dto.Game_id, &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	wasOver := state.IsGameOver

	fn(state, dto)

	if err := queries.SaveState(dto.Game_id, state, &conn); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if state.IsGameOver && !wasOver {
		db := database.PostgreSQLConnection()
		defer db.Close()
		queries.FinishGame(dto.Game_id, db)
	}
	return c.JSON(state)
}

// Roll runs the whole movement phase in one request: gate, dice, every
// step, and landing resolution. An AI current player takes its full turn
// instead.
func Roll(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		if g.Players[g.CurrentPlayerIndex].IsAi {
			game.PlayAITurn(g, rng)
			return
		}
		if !game.BeginRoll(g, rng) {
			return
		}
		steps := g.DiceValue[0] + g.DiceValue[1]
		for i := 0; i < steps; i++ {
			game.MoveOneStep(g)
		}
		game.HandleLanding(g, rng)
		game.EndTurn(g, rng)
	})
}

func AITurn(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.PlayAITurn(g, rng)
	})
}

func Buy(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		player := g.Players[g.CurrentPlayerIndex]
		game.BuyProperty(g, player.Position, player.Id)
		game.EndTurn(g, rng)
	})
}

func Upgrade(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		player := g.Players[g.CurrentPlayerIndex]
		game.UpgradeProperty(g, player.Position, player.Id)
		game.EndTurn(g, rng)
	})
}

func Pass(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.SkipAction(g)
		game.EndTurn(g, rng)
	})
}

// Sell, Mortgage, and SellStock re-run the solvency check when a debt
// crisis is open, so a successful liquidation clears it immediately.
func Sell(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.SellProperty(g, dto.Tile_id, dto.Player_id)
		game.ResolveDebtCrisis(g)
	})
}

func Mortgage(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.MortgageProperty(g, dto.Tile_id, dto.Player_id)
		game.ResolveDebtCrisis(g)
	})
}

func Redeem(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.RedeemProperty(g, dto.Tile_id, dto.Player_id)
	})
}

func BuyStock(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.BuyStock(g, dto.Player_id, dto.Company_id, dto.Shares)
	})
}

func SellStock(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.SellStock(g, dto.Player_id, dto.Company_id, dto.Shares)
		game.ResolveDebtCrisis(g)
	})
}

func BuyLottery(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.BuyLottery(g, dto.Player_id, dto.Numbers)
	})
}

// AckCard applies the pending card's effect and, when nothing else is
// pending, completes the turn.
func AckCard(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.ApplyCardEffect(g, rng)
		game.EndTurn(g, rng)
	})
}

func ResolveDebt(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.ResolveDebtCrisis(g)
		game.EndTurn(g, rng)
	})
}

func Declare(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.DeclareBankruptcy(g)
	})
}

func JailFree(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.UseJailFreeCard(g, dto.Player_id)
	})
}

// Cleanup drops expired visual markers; the UI driver polls this.
func Cleanup(c *fiber.Ctx) error {
	return withState(c, func(g *models.GameState, dto *ActionDto) {
		game.ClearEffects(g)
	})
}
