// ABOUTME: CLI commands for career record operations.
// ABOUTME: Provides add, list, search, and show subcommands.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/2389-research/worklog/internal/models"
	"github.com/2389-research/worklog/internal/search"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a career log record",
	Long:  "Record an accomplishment with a date, category, and description.",
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent records",
	Long:  "List career log records sorted by date, newest first.",
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search records",
	Long:  "Search career log records by keyword, ranked by relevance.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a record",
	Long:  "Show a specific career log record by file path.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// Flags
var (
	addDate        string
	addCategory    string
	addDescription string
	addImpact      string
	addSkills      []string
	addTags        []string
	addProject     string
	listLimit      int
	listDays       int
	listCategory   string
	searchLimit    int
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "Date of the accomplishment (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category: "+strings.Join(models.ValidCategories, ", "))
	addCmd.Flags().StringVar(&addDescription, "description", "", "What was done")
	addCmd.Flags().StringVar(&addImpact, "impact", "", "Impact statement")
	addCmd.Flags().StringSliceVar(&addSkills, "skill", nil, "Skill exercised (repeatable)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Free-form tag (repeatable)")
	addCmd.Flags().StringVar(&addProject, "project", "", "Project name")

	listCmd.Flags().IntVar(&listLimit, "limit", 10, "Maximum number of records to show")
	listCmd.Flags().IntVar(&listDays, "days", 30, "Number of days back to search (0 = all)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show this category")

	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum number of results")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addDescription == "" {
		return fmt.Errorf("--description is required")
	}
	if addCategory == "" {
		return fmt.Errorf("--category is required (%s)", strings.Join(models.ValidCategories, ", "))
	}
	date := addDate
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	rec, err := models.NewRecord(date, addCategory, addDescription)
	if err != nil {
		return err
	}
	rec.Impact = addImpact
	rec.Skills = addSkills
	rec.Tags = addTags
	rec.Project = addProject

	if err := globalStore.WriteRecord(rec); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	fmt.Printf("Record saved: %s\n", rec.FilePath)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := globalStore.ListRecords(0, listDays)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	count := 0
	for _, rec := range records {
		if listCategory != "" && rec.Category != listCategory {
			continue
		}
		if listLimit > 0 && count >= listLimit {
			break
		}
		count++
		fmt.Printf("%s [%s] %s\n", rec.Date, rec.Category, rec.Description)
		fmt.Printf("    %s\n", rec.FilePath)
	}

	if count == 0 {
		fmt.Println("No records found.")
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	records, err := globalStore.ListRecords(0, 0)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	results := search.Search(records, query, search.Options{Limit: searchLimit})
	if len(results) == 0 {
		fmt.Println("No matching records found.")
		return nil
	}

	for _, res := range results {
		rec := res.Record
		fmt.Printf("--- %s [%s] %s\n", rec.Date, rec.Category, rec.FilePath)
		fmt.Printf("  %s\n", truncate(rec.Description, 100))
		if rec.Impact != "" {
			fmt.Printf("  Impact: %s\n", truncate(rec.Impact, 100))
		}
		fmt.Println()
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	rec, err := globalStore.ReadRecord(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	fmt.Printf("Date: %s\n", rec.Date)
	fmt.Printf("Category: %s\n", models.CategoryTitle(rec.Category))
	if rec.Project != "" {
		fmt.Printf("Project: %s\n", rec.Project)
	}
	fmt.Println()
	fmt.Printf("## Description\n%s\n", rec.Description)
	if rec.Impact != "" {
		fmt.Printf("\n## Impact\n%s\n", rec.Impact)
	}
	if len(rec.Skills) > 0 {
		fmt.Printf("\nSkills: %s\n", strings.Join(rec.Skills, ", "))
	}
	if len(rec.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(rec.Tags, ", "))
	}
	return nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
