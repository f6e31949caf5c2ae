package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lkaiyu/richman-backend/app/controllers"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")
	route.Post("/create", controllers.CreateGame)
	route.Get("/verify", controllers.VerifyGame)
	route.Get("/all", controllers.GetAllAvailGames)
	route.Get("/state", controllers.GetState)
	route.Delete("/delete", controllers.DeleteGame)

	play := a.Group("/play")
	play.Post("/roll", controllers.Roll)
	play.Post("/ai", controllers.AITurn)
	play.Post("/buy", controllers.Buy)
	play.Post("/upgrade", controllers.Upgrade)
	play.Post("/pass", controllers.Pass)
	play.Post("/sell", controllers.Sell)
	play.Post("/mortgage", controllers.Mortgage)
	play.Post("/redeem", controllers.Redeem)
	play.Post("/stock/buy", controllers.BuyStock)
	play.Post("/stock/sell", controllers.SellStock)
	play.Post("/lottery", controllers.BuyLottery)
	play.Post("/card", controllers.AckCard)
	play.Post("/debt", controllers.ResolveDebt)
	play.Post("/bankrupt", controllers.Declare)
	play.Post("/jail-free", controllers.JailFree)
	play.Post("/cleanup", controllers.Cleanup)
}
