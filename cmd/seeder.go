package cmd

import (
	"fmt"
	"log"

	"github.com/tvintergoller/keep-informed/internal/auth"
	"github.com/spf13/cobra"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"activity_logs", "chat_messages", "tasks", "news", "events", "employees", "departments", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		credential, err := auth.HashPassword("password")
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		seedUsers := []struct {
			Email string
			Role  string
		}{
			{"admin@keepinformed.local", "admin"},
			{"timofey@keepinformed.local", "user"},
			{"alexandra@keepinformed.local", "user"},
		}

		for _, u := range seedUsers {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}

			if err := db.Exec("INSERT INTO users (email, password, role) VALUES (?, ?, ?)", u.Email, credential, u.Role).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		departments := []string{"Engineering", "HR", "Sales"}
		for _, name := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE name = ?", name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO departments (name) VALUES (?)", name).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Println("Seeded department:", name)
		}

		employees := []struct {
			Name       string
			Position   string
			Department string
		}{
			{"Timofey Vintergoller", "Developer", "Engineering"},
			{"Alexandra Sorokina", "Developer", "Engineering"},
			{"Maria Ivanova", "Recruiter", "HR"},
		}

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM employees WHERE name = ?", e.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			var deptID int64
			if err := db.Raw("SELECT id FROM departments WHERE name = ?", e.Department).Row().Scan(&deptID); err != nil {
				log.Fatalf("department not found %s: %v", e.Department, err)
			}

			if err := db.Exec("INSERT INTO employees (name, position, department_id) VALUES (?, ?, ?)", e.Name, e.Position, deptID).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Name, err)
			}
			fmt.Println("Seeded employee:", e.Name)
		}

		fmt.Println("Seeding complete")
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}
