// Command seed fills the database with demo content for local development.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/wahidu1/portfolio-core/internal/config"
	"github.com/wahidu1/portfolio-core/internal/database"
	"github.com/wahidu1/portfolio-core/internal/models"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		panic(err)
	}

	if err := database.SeedDefaultSettings(db); err != nil {
		panic(err)
	}

	skills := []models.SkillModel{
		{Name: "Go", Icon: "devicon-go-plain", Percentage: 90, Order: 1},
		{Name: "Python", Icon: "devicon-python-plain", Percentage: 85, Order: 2},
		{Name: "MySQL", Icon: "devicon-mysql-plain", Percentage: 75, Order: 3},
	}
	if err := db.Create(&skills).Error; err != nil {
		panic(err)
	}

	now := time.Now()
	start := now.AddDate(-2, 0, 0)
	experiences := []models.ExperienceModel{
		{Title: "Backend Engineer", Company: "Acme Corp", Description: "Built APIs.", StartDate: start, Order: 1},
	}
	if err := db.Create(&experiences).Error; err != nil {
		panic(err)
	}

	works := []models.WorkModel{
		{
			Title:       "Portfolio Backend",
			Subtext:     "Content API for a personal site",
			Description: "REST backend serving portfolio content.",
			Technologies: []models.TechnologyModel{
				{Name: "Go"}, {Name: "MySQL"}, {Name: "Redis"},
			},
			GithubLink: "https://github.com/wahidu1/portfolio-core",
			Order:      1,
		},
	}
	if err := db.Create(&works).Error; err != nil {
		panic(err)
	}

	posts := []models.BlogPostModel{
		{
			Title:   "Hello World",
			Excerpt: "First post.",
			Content: "Welcome to the blog.",
			Status:  models.PostPublished,
		},
		{
			Title:   "Work in Progress",
			Excerpt: "Not ready yet.",
			Content: "Draft content.",
			Status:  models.PostDraft,
		},
	}
	if err := db.Create(&posts).Error; err != nil {
		panic(err)
	}

	faqs := []models.FAQModel{
		{Question: "Are you available for freelance work?", Answer: "Yes, reach out via the contact form.", Order: 1},
	}
	if err := db.Create(&faqs).Error; err != nil {
		panic(err)
	}

	testimonials := []models.TestimonialModel{
		{ClientName: "Jane Doe", Feedback: "Great to work with.", Rating: 5, Order: 1},
	}
	if err := db.Create(&testimonials).Error; err != nil {
		panic(err)
	}

	fmt.Println("seeded demo content")
}
