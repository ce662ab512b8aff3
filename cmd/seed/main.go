package main

import (
	"context"
	"log"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/proactivefit/backend/config"
	"github.com/proactivefit/backend/internal/database"
	"github.com/proactivefit/backend/internal/service"
)

var categories = []string{"motivation", "nutrition", "injuries", "beginners", "general"}

// Seeds the support forum with fake topics and posts for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	svc := service.NewSupportService(db)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		topic, err := svc.CreateTopic(ctx,
			gofakeit.Sentence(5),
			gofakeit.Paragraph(1, 2, 8, " "),
			categories[rand.Intn(len(categories))],
		)
		if err != nil {
			log.Fatalf("Failed to create topic: %v", err)
		}

		for j := 0; j < rand.Intn(5)+1; j++ {
			username := ""
			if gofakeit.Bool() {
				username = gofakeit.Username()
			}
			if _, err := svc.CreatePost(ctx, topic.ID, gofakeit.Sentence(12), username); err != nil {
				log.Fatalf("Failed to create post: %v", err)
			}
		}

		log.Printf("Seeded topic %q", topic.Title)
	}

	log.Println("Done")
}
