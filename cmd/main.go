package main

import (
	"log"
	"os"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/routes"
	"github.com/PoojaSancheti/Low-PocEat/utils"
)

func main() {
	config.InitDB()

	mailer, err := utils.NewSESMailer()
	if err != nil {
		log.Fatalf("Mailer init failed: %v", err)
	}

	images, err := utils.NewS3ImageStore()
	if err != nil {
		log.Fatalf("Image store init failed: %v", err)
	}

	r := routes.SetupRouter(mailer, images)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
