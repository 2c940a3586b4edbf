package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/dateparse"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Manage seasonal planner tasks",
	GroupID: "garden",
}

var taskAddCmd = &cobra.Command{
	Use:     "add [title]",
	Aliases: []string{"new"},
	Short:   "Add a planner task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		if title == "" {
			output.Error("title is required")
			return fmt.Errorf("title is required")
		}

		category, _ := cmd.Flags().GetString("category")
		if !models.IsValidCategory(models.TaskCategory(category)) {
			output.Error("invalid category: %s (valid: planting, watering, pruning, fertilizing, harvesting, pest-control, maintenance, repotting)", category)
			return fmt.Errorf("invalid category: %s", category)
		}

		seasonFlag, _ := cmd.Flags().GetString("season")
		season := models.NormalizeSeason(seasonFlag)
		if !models.IsValidSeason(season) {
			output.Error("invalid season: %s (valid: spring, summer, fall, winter)", seasonFlag)
			return fmt.Errorf("invalid season: %s", seasonFlag)
		}

		var due string
		if dueFlag, _ := cmd.Flags().GetString("due"); dueFlag != "" {
			var err error
			due, err = dateparse.Parse(dueFlag)
			if err != nil {
				output.Error("%v", err)
				return err
			}
		}

		plant, _ := cmd.Flags().GetString("plant")

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		task, err := a.state.AddTask(models.Task{
			Title:    title,
			Plant:    plant,
			Category: models.TaskCategory(category),
			Season:   season,
			Due:      due,
		})
		if err != nil {
			output.Error("add task: %v", err)
			return err
		}

		output.Success("Task %d added to the %s planner", task.ID, task.Season)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List planner tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		tasks := a.state.Tasks()

		if seasonFlag, _ := cmd.Flags().GetString("season"); seasonFlag != "" {
			season := models.NormalizeSeason(seasonFlag)
			var filtered []models.Task
			for _, t := range tasks {
				if t.Season == season {
					filtered = append(filtered, t)
				}
			}
			tasks = filtered
		}
		if pending, _ := cmd.Flags().GetBool("pending"); pending {
			var filtered []models.Task
			for _, t := range tasks {
				if !t.Done {
					filtered = append(filtered, t)
				}
			}
			tasks = filtered
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(tasks)
		}

		if len(tasks) == 0 {
			output.Info("No tasks. Add one with 'gdn task add'.")
			return nil
		}

		today := models.FormatDate(time.Now())
		for _, t := range tasks {
			output.Info("%s", output.FormatTaskLine(t, today))
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:     "done [id]",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task done/undone",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		if err := a.state.ToggleTask(id); err != nil {
			output.Error("toggle task: %v", err)
			return err
		}
		output.Success("Toggled")
		return nil
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		if err := a.state.RemoveTask(id); err != nil {
			output.Error("remove task: %v", err)
			return err
		}
		output.Success("Removed")
		return nil
	},
}

func init() {
	taskAddCmd.Flags().String("category", string(models.CategoryPlanting), "task category")
	taskAddCmd.Flags().String("season", string(models.SeasonSpring), "planner season")
	taskAddCmd.Flags().String("due", "", "due date (YYYY-MM-DD, today, tomorrow, +Nd, weekday)")
	taskAddCmd.Flags().String("plant", "", "plant label this task is about")

	taskListCmd.Flags().String("season", "", "filter by season")
	taskListCmd.Flags().Bool("pending", false, "only tasks not done")
	taskListCmd.Flags().Bool("json", false, "output as JSON")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskRemoveCmd)
	rootCmd.AddCommand(taskCmd)
}
