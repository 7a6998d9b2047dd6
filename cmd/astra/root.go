package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "astra",
		Short: "ASTRA social tutor: agent-team tutoring for small programming groups",
		Long: heredoc.Doc(`
			astra runs a tutor agent and a group facilitator agent for small
			groups of programming students. Each student message refreshes the
			sender's learner profile and is routed to the agent that should
			answer it: the tutor by default, the facilitator every few student
			turns, and the tutor whenever it is called out with @tutor.
		`),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newChatCmd(),
		newExportCmd(),
		newTasksCmd(),
	)

	return rootCmd
}
