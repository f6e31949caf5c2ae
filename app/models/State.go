package models

// VisualEffect is presentation bookkeeping only. Effects are stripped from
// persisted snapshots and expire after a fixed window.
type VisualEffect struct {
	Id        string `json:"id"`
	Type      string `json:"type"` // "FLOAT_TEXT" or "MONEY_SHOWER"
	Text      string `json:"text"`
	Value     int    `json:"value"`
	Position  int    `json:"position"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

// GameState is the aggregate root. Every transition is applied by exactly one
// logical writer at a time; randomized transitions take an injected generator.
type GameState struct {
	Players            []Player       `json:"players"`
	Tiles              []Tile         `json:"tiles"`
	Companies          []Company      `json:"companies"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	DiceValue          []int          `json:"diceValue,omitempty"` // nil until rolled this turn
	GameLog            []string       `json:"gameLog"`
	Winner             string         `json:"winner,omitempty"`
	IsGameOver         bool           `json:"isGameOver"`
	WaitingForAction   bool           `json:"waitingForAction"`

	Day            int `json:"day"`
	LotteryJackpot int `json:"lotteryJackpot"`
	DaysUntilDraw  int `json:"daysUntilDraw"`

	VisualEffects []VisualEffect `json:"visualEffects,omitempty"`

	DebtCrisis    *DebtCrisis    `json:"debtCrisis,omitempty"`
	ActiveCard    *ActiveCard    `json:"activeCard,omitempty"`
	JailFreeCards map[string]int `json:"jailFreeCards"`
}

// Snapshot is the persisted record for one game. Loading tolerates records
// written by older versions; optional fields absent from them are
// default-filled.
type Snapshot struct {
	Version int       `json:"version"`
	State   GameState `json:"state"`
}

const SnapshotVersion = 4
