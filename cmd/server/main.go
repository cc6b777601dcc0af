package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/youruser/photojoin/internal/api"
)

func main() {
	r := gin.Default()
	api.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
