package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"petminder/internal/config"
	"petminder/internal/database"
	"petminder/internal/schedule"

	"github.com/spf13/cobra"
)

// NewDueCmd creates the due command
func NewDueCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List tasks that are due",
		Long:  "List tasks due today or overdue, grouped by pet. Use --all to list every task.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			db, err := database.New(cfg.SQLitePath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()

			ctx := context.Background()
			petRepo := database.NewPetRepository(db)
			taskRepo := database.NewTaskRepository(db)

			pets, err := petRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("list pets: %w", err)
			}
			petNames := make(map[string]string, len(pets))
			for _, pet := range pets {
				petNames[pet.ID.String()] = pet.Name
			}

			tasks, err := taskRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			now := time.Now()
			shown := 0
			for _, task := range tasks {
				if !all && !schedule.IsDue(task.NextDueDate, now) {
					continue
				}
				name := petNames[task.PetID.String()]
				if name == "" {
					name = task.PetID.String()
				}
				fmt.Printf("  [%s] %s (%s) due %s every %d days\n",
					name, task.Title, task.Type,
					task.NextDueDate.Format("2006-01-02"), task.FrequencyDays)
				shown++
			}
			if shown == 0 {
				if all {
					fmt.Println("No tasks.")
				} else {
					fmt.Println("Nothing due today.")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every task, not just due ones")
	return cmd
}
