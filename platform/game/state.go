package game

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lkaiyu/richman-backend/app/models"
	"github.com/lkaiyu/richman-backend/platform/board"
	uuid "github.com/satori/go.uuid"
)

// effectTTL is how long a visual marker stays in state, in millis.
const effectTTL = 2000

const maxLogEntries = 200

var playerColors = []string{"blue", "red", "green", "yellow"}

// NewGame builds a fresh state. The first player is human, the rest are AI,
// matching the classic one-human-vs-computer setup.
func NewGame(playerNames []string) *models.GameState {
	players := make([]models.Player, len(playerNames))
	for i, name := range playerNames {
		players[i] = models.Player{
			Id:             fmt.Sprintf("p%d", i),
			Name:           name,
			Color:          playerColors[i%len(playerColors)],
			Money:          board.InitialMoney,
			IsAi:           i > 0,
			Portfolio:      map[string]int{},
			LotteryTickets: []models.LotteryTicket{},
		}
	}

	return &models.GameState{
		Players:        players,
		Tiles:          board.Tiles(),
		Companies:      board.Companies(),
		GameLog:        []string{"🎮 New game started!"},
		Day:            1,
		LotteryJackpot: jackpotBase,
		DaysUntilDraw:  drawInterval,
		JailFreeCards:  map[string]int{},
	}
}

// Snapshot serializes the state for persistence, minus ephemeral
// presentation markers.
func Snapshot(g *models.GameState) ([]byte, error) {
	clean := *g
	clean.VisualEffects = nil
	return json.Marshal(models.Snapshot{Version: models.SnapshotVersion, State: clean})
}

// LoadSnapshot restores a persisted state. Records written by older schema
// versions are tolerated; optional fields they lack are default-filled.
func LoadSnapshot(data []byte) (*models.GameState, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	g := snap.State
	if len(g.Players) == 0 {
		return nil, fmt.Errorf("snapshot has no players")
	}
	if len(g.Tiles) == 0 {
		g.Tiles = board.Tiles()
	}
	if len(g.Companies) == 0 {
		g.Companies = board.Companies()
	}
	if g.JailFreeCards == nil {
		g.JailFreeCards = map[string]int{}
	}
	g.VisualEffects = nil
	for i := range g.Players {
		if g.Players[i].Portfolio == nil {
			g.Players[i].Portfolio = map[string]int{}
		}
		if g.Players[i].LotteryTickets == nil {
			g.Players[i].LotteryTickets = []models.LotteryTicket{}
		}
	}
	return &g, nil
}

func nowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// AddMoneyEffect records a floating money marker at a board position.
// Markers are presentation-only and never persisted, so wall-clock
// timestamps here do not break reproducibility.
func AddMoneyEffect(g *models.GameState, amount int, position int) {
	if amount == 0 {
		return
	}
	now := nowMillis()
	text := fmt.Sprintf("+$%d", amount)
	if amount < 0 {
		text = fmt.Sprintf("-$%d", -amount)
	}
	g.VisualEffects = append(g.VisualEffects,
		models.VisualEffect{
			Id:        uuid.NewV4().String(),
			Type:      "FLOAT_TEXT",
			Text:      text,
			Value:     amount,
			Position:  position,
			Timestamp: now,
		},
		models.VisualEffect{
			Id:        uuid.NewV4().String(),
			Type:      "MONEY_SHOWER",
			Value:     amount,
			Position:  position,
			Timestamp: now,
		})
}

// ClearEffects drops expired visual markers. Calling it again without new
// markers yields the same state.
func ClearEffects(g *models.GameState) {
	now := nowMillis()
	active := g.VisualEffects[:0]
	for _, e := range g.VisualEffects {
		if now-e.Timestamp < effectTTL {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		g.VisualEffects = nil
		return
	}
	g.VisualEffects = active
}

func appendLog(g *models.GameState, format string, args ...interface{}) {
	g.GameLog = append(g.GameLog, fmt.Sprintf(format, args...))
	if len(g.GameLog) > maxLogEntries {
		g.GameLog = g.GameLog[len(g.GameLog)-maxLogEntries:]
	}
}

// playerIndex resolves a player id. An unknown id is a programming error.
func playerIndex(g *models.GameState, playerId string) int {
	for i := range g.Players {
		if g.Players[i].Id == playerId {
			return i
		}
	}
	panic(fmt.Sprintf("unknown player %q", playerId))
}

// tileIndex resolves a tile id. An unknown id is a programming error.
func tileIndex(g *models.GameState, tileId int) int {
	for i := range g.Tiles {
		if g.Tiles[i].Id == tileId {
			return i
		}
	}
	panic(fmt.Sprintf("unknown tile %d", tileId))
}

func companyIndex(g *models.GameState, companyId string) int {
	for i := range g.Companies {
		if g.Companies[i].Id == companyId {
			return i
		}
	}
	panic(fmt.Sprintf("unknown company %q", companyId))
}
