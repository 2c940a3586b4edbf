package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var moodEmojis = map[models.Mood]string{
	models.MoodExcited:    "🤩",
	models.MoodHappy:      "😊",
	models.MoodProductive: "💪",
	models.MoodCalm:       "😌",
	models.MoodWorried:    "😟",
	models.MoodSad:        "😔",
}

var weatherEmojis = map[models.Weather]string{
	models.WeatherSunny:  "☀️",
	models.WeatherCloudy: "⛅",
	models.WeatherRainy:  "🌧️",
	models.WeatherSnowy:  "❄️",
	models.WeatherWindy:  "💨",
	models.WeatherStormy: "⛈️",
}

var journalCmd = &cobra.Command{
	Use:     "journal",
	Short:   "Keep a gardening journal",
	GroupID: "track",
}

var journalAddCmd = &cobra.Command{
	Use:     "add [title]",
	Aliases: []string{"new"},
	Short:   "Write a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		text, _ := cmd.Flags().GetString("text")
		if title == "" || text == "" {
			output.Error("title and --text are required")
			return fmt.Errorf("title and text are required")
		}

		moodFlag, _ := cmd.Flags().GetString("mood")
		mood := models.Mood(strings.ToLower(moodFlag))
		if !models.IsValidMood(mood) {
			output.Error("invalid mood: %s (valid: excited, happy, productive, calm, worried, sad)", moodFlag)
			return fmt.Errorf("invalid mood: %s", moodFlag)
		}

		weatherFlag, _ := cmd.Flags().GetString("weather")
		weather := models.Weather(strings.ToLower(weatherFlag))
		if !models.IsValidWeather(weather) {
			output.Error("invalid weather: %s (valid: sunny, cloudy, rainy, snowy, windy, stormy)", weatherFlag)
			return fmt.Errorf("invalid weather: %s", weatherFlag)
		}

		tags, _ := cmd.Flags().GetString("tags")
		plantID, _ := cmd.Flags().GetInt64("plant")

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

		entry, err := a.state.AddJournalEntry(models.JournalEntry{
			Title:   title,
			Text:    text,
			Mood:    mood,
			Weather: weather,
			PlantID: plantID,
		}, tags)
		if err != nil {
			output.Error("add entry: %v", err)
			return err
		}

		output.Success("%s Entry %d saved", moodEmojis[entry.Mood], entry.ID)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show journal entries, newest first",
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

		entries := a.state.Journal()

		if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
			var filtered []models.JournalEntry
			for _, e := range entries {
				for _, t := range e.Tags {
					if t == tag {
						filtered = append(filtered, e)
						break
					}
				}
			}
			entries = filtered
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(entries)
		}

		if len(entries) == 0 {
			output.Info("No journal entries yet. Write one with 'gdn journal add'.")
			return nil
		}

		today := models.FormatDate(time.Now())
		for _, e := range entries {
			header := fmt.Sprintf("%s %s  %s %s", moodEmojis[e.Mood], weatherEmojis[e.Weather], e.Title,
				"· "+output.HumanDate(e.Date, today))
			output.Title("%s", header)
			output.Info("  %s", e.Text)
			if len(e.Tags) > 0 {
				output.Subtle("  #%s", strings.Join(e.Tags, " #"))
			}
		}
		return nil
	},
}

func init() {
	journalAddCmd.Flags().String("text", "", "entry body")
	journalAddCmd.Flags().String("mood", string(models.MoodHappy), "mood")
	journalAddCmd.Flags().String("weather", string(models.WeatherSunny), "weather")
	journalAddCmd.Flags().String("tags", "", "comma-separated tags")
	journalAddCmd.Flags().Int64("plant", 0, "linked plant id")

	journalListCmd.Flags().String("tag", "", "filter by tag")
	journalListCmd.Flags().Bool("json", false, "output as JSON")

	journalCmd.AddCommand(journalAddCmd, journalListCmd)
	rootCmd.AddCommand(journalCmd)
}
