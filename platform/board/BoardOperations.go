package board

import (
	"github.com/lkaiyu/richman-backend/app/models"
)

const (
	Size         = 28
	InitialMoney = 15000
	Salary       = 2000
)

// Map layout: clockwise from the bottom-right corner.
// 0: BR, 7: BL (jail), 14: TL (free parking), 21: TR (to jail).
var tiles = []models.Tile{
	{Id: 0, Name: "Start", Type: models.TileStart, Color: "gray", Description: "Collect salary"},
	{Id: 1, Name: "Taipei", Type: models.TileProperty, Price: 800, BaseRent: 60, Color: "indigo"},
	{Id: 2, Name: "Lottery", Type: models.TileLottery, Color: "pink", Description: "Feeling lucky"},
	{Id: 3, Name: "Kaohsiung", Type: models.TileProperty, Price: 900, BaseRent: 70, Color: "indigo"},
	{Id: 4, Name: "Fate", Type: models.TileFate, Color: "purple"},
	{Id: 5, Name: "Hong Kong", Type: models.TileProperty, Price: 1500, BaseRent: 120, Color: "indigo"},
	{Id: 6, Name: "Macau", Type: models.TileProperty, Price: 1400, BaseRent: 110, Color: "indigo"},

	{Id: 7, Name: "Jail", Type: models.TileJail, Color: "gray", Description: "Just visiting"},

	{Id: 8, Name: "Shenzhen", Type: models.TileProperty, Price: 2000, BaseRent: 160, Color: "blue"},
	{Id: 9, Name: "Guangzhou", Type: models.TileProperty, Price: 1800, BaseRent: 150, Color: "blue"},
	{Id: 10, Name: "Chance", Type: models.TileChance, Color: "orange"},
	{Id: 11, Name: "Changsha", Type: models.TileProperty, Price: 1600, BaseRent: 130, Color: "blue"},
	{Id: 12, Name: "Wuhan", Type: models.TileProperty, Price: 1700, BaseRent: 140, Color: "blue"},
	{Id: 13, Name: "Lottery", Type: models.TileLottery, Color: "pink"},

	{Id: 14, Name: "Free Parking", Type: models.TileCorner, Color: "gray", Description: "Rest one turn"},

	{Id: 15, Name: "Chengdu", Type: models.TileProperty, Price: 2200, BaseRent: 180, Color: "green"},
	{Id: 16, Name: "Chongqing", Type: models.TileProperty, Price: 2300, BaseRent: 190, Color: "green"},
	{Id: 17, Name: "Fate", Type: models.TileFate, Color: "purple"},
	{Id: 18, Name: "Xi'an", Type: models.TileProperty, Price: 2400, BaseRent: 200, Color: "green"},
	{Id: 19, Name: "Nanjing", Type: models.TileProperty, Price: 2600, BaseRent: 220, Color: "green"},
	{Id: 20, Name: "Hangzhou", Type: models.TileProperty, Price: 2800, BaseRent: 240, Color: "green"},

	{Id: 21, Name: "Go To Jail", Type: models.TileToJail, Color: "gray", Description: "Straight to jail"},

	{Id: 22, Name: "Qingdao", Type: models.TileProperty, Price: 3000, BaseRent: 260, Color: "rose"},
	{Id: 23, Name: "Dalian", Type: models.TileProperty, Price: 3200, BaseRent: 280, Color: "rose"},
	{Id: 24, Name: "Chance", Type: models.TileChance, Color: "orange"},
	{Id: 25, Name: "Tianjin", Type: models.TileProperty, Price: 3500, BaseRent: 300, Color: "rose"},
	{Id: 26, Name: "Shanghai", Type: models.TileProperty, Price: 4500, BaseRent: 400, Color: "rose"},
	{Id: 27, Name: "Beijing", Type: models.TileProperty, Price: 5000, BaseRent: 500, Color: "rose"},
}

// Price band 5-50 so shares stay affordable against typical player balances.
var companies = []models.Company{
	{Id: "c1", Name: "Penguin Tech", Price: 28, Volatility: 0.15, Industry: "Tech", Color: "text-blue-400"},
	{Id: "c2", Name: "Chrysanthemum Mobile", Price: 35, Volatility: 0.18, Industry: "Tech", Color: "text-red-400"},
	{Id: "c3", Name: "Byte Bounce", Price: 42, Volatility: 0.20, Industry: "Tech", Color: "text-cyan-400"},

	{Id: "c4", Name: "Fortune E-Commerce", Price: 18, Volatility: 0.12, Industry: "Internet", Color: "text-orange-400"},
	{Id: "c5", Name: "Big Bro Express", Price: 22, Volatility: 0.14, Industry: "Internet", Color: "text-rose-400"},

	{Id: "c6", Name: "Sauce Aroma Liquor", Price: 50, Volatility: 0.05, Industry: "Consumer", Color: "text-amber-500"},
	{Id: "c7", Name: "Milk Tea Glory", Price: 15, Volatility: 0.16, Industry: "Consumer", Color: "text-pink-400"},

	{Id: "c8", Name: "New Energy Motors", Price: 12, Volatility: 0.25, Industry: "Manufacturing", Color: "text-green-400"},
	{Id: "c9", Name: "Solar Photon", Price: 8, Volatility: 0.22, Industry: "Manufacturing", Color: "text-yellow-300"},

	{Id: "c10", Name: "Cosmos Bank", Price: 6, Volatility: 0.03, Industry: "Finance", Color: "text-yellow-400"},
	{Id: "c11", Name: "SafeHarbor Insurance", Price: 10, Volatility: 0.06, Industry: "Finance", Color: "text-emerald-400"},

	{Id: "c12", Name: "Miracle Pharma", Price: 32, Volatility: 0.18, Industry: "Pharma", Color: "text-purple-400"},
}

// Tiles returns a fresh copy of the board layout for one new game.
func Tiles() []models.Tile {
	out := make([]models.Tile, len(tiles))
	copy(out, tiles)
	return out
}

// Companies returns a fresh copy of the market seed, each with its history
// primed to the starting price.
func Companies() []models.Company {
	out := make([]models.Company, len(companies))
	for i, c := range companies {
		history := make([]int, 5)
		for j := range history {
			history[j] = c.Price
		}
		c.History = history
		out[i] = c
	}
	return out
}

// JailPosition finds the jail tile instead of hardcoding its index.
func JailPosition() int {
	for _, t := range tiles {
		if t.Type == models.TileJail {
			return t.Id
		}
	}
	panic("board has no jail tile")
}
