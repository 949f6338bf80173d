package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()
	utils.InitSheets()
	services.SeedAdmin()

	r := routes.SetupRouter()
	r.Run(":8080")
}
