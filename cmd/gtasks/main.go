package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gtasks/internal/config"
	"gtasks/internal/store"
	"gtasks/internal/ui"
)

var (
	flagAdd         string
	flagDescription string
	flagList        bool
)

var rootCmd = &cobra.Command{
	Use:          "gtasks",
	Short:        "Terminal task manager",
	Long:         "gtasks keeps a simple task list. Run it bare for the full-screen interface, or use --add/--list for one-shot operations.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagAdd, "add", "a", "", "add a task and exit")
	rootCmd.Flags().StringVarP(&flagDescription, "description", "d", "", "description for the task (used with --add)")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "list all tasks and exit")
}

func run(cmd *cobra.Command) error {
	path := store.DefaultPath()
	if moved, err := store.MigrateLegacy("tasks.json", path); err != nil {
		log.Warn("could not migrate legacy task file", "err", err)
	} else if moved {
		log.Info("migrated tasks from ./tasks.json", "to", path)
	}
	st := store.Open(path)

	if cmd.Flags().Changed("add") {
		title := strings.TrimSpace(flagAdd)
		if title == "" {
			return fmt.Errorf("task title cannot be empty")
		}
		t, err := st.Add(title, flagDescription)
		if err != nil {
			log.Warn("could not save tasks", "err", err)
		}
		fmt.Printf("Task added: [%d] %s\n", t.ID, t.Title)
		return nil
	}

	if flagList {
		if st.Len() == 0 {
			fmt.Println("No tasks found.")
			return nil
		}
		for _, t := range st.Tasks() {
			fmt.Println(formatTask(t))
		}
		return nil
	}

	firstRun := !st.Exists()
	cfgPath := filepath.Join(filepath.Dir(path), config.DefaultFileName)
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		log.Warn("could not load config, using defaults", "err", err)
		cfg = config.Default()
	}
	return ui.Run(st, cfg, firstRun)
}

func formatTask(t store.Task) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	line := fmt.Sprintf("%s %d %s", checkbox, t.ID, t.Title)
	if t.Description != "" {
		line += " - " + t.Description
	}
	return line
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
