package main

import (
	"Recipe-Share-Backend/cmd/config"
	"Recipe-Share-Backend/internal/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error opening database handle: %v", err)
	}

	// keep retrying in the background; the server starts regardless
	go config.WaitForDB(db)

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error setting up app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
