package routes

import (
	"fac_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges = "/charges"
	PathPing    = "/ping"
)

func addChargeRoutes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("", chargeHandler.CreateCharge)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}
