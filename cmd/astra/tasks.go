package main

import (
	"fmt"

	"github.com/solex2006/astra-social-tutor/config"

	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the task catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()

			tasks, err := newTaskService(cfg)
			if err != nil {
				return err
			}

			if find != "" {
				task, err := tasks.FindTask(find)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n\n%s\n", task.ID, task.Name, task.Description)
				return nil
			}

			for _, t := range tasks.ListTasks() {
				fmt.Printf("%s\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "Resolve a single task by fuzzy lookup")

	return cmd
}
