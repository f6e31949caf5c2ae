package models

type TileType string

const (
	TileStart    TileType = "START"
	TileProperty TileType = "PROPERTY"
	TileCorner   TileType = "CORNER"
	TileFate     TileType = "FATE"
	TileChance   TileType = "CHANCE"
	TileJail     TileType = "JAIL"
	TileToJail   TileType = "TO_JAIL"
	TileLottery  TileType = "LOTTERY"
)

// MaxLevel is the highest upgrade tier of a property.
const MaxLevel = 5

type Tile struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Type        TileType `json:"type"`
	Price       int      `json:"price,omitempty"`
	BaseRent    int      `json:"baseRent,omitempty"`
	OwnerId     string   `json:"ownerId,omitempty"` // empty means unowned
	Level       int      `json:"level,omitempty"`   // 0 when unowned
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
	IsMortgaged bool     `json:"isMortgaged,omitempty"`
}

type Company struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Price      int     `json:"price"`
	Volatility float64 `json:"volatility"`
	History    []int   `json:"history"`
	Industry   string  `json:"industry"`
	Color      string  `json:"color"`
}
