package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/solex2006/astra-social-tutor/models"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var (
		taskQuery    string
		student      string
		participants []string
		period       int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the tutor from the terminal",
		Long: heredoc.Doc(`
			chat starts a throwaway tutoring session and reads messages from
			stdin as one student. Turns are recorded to the configured record
			store exactly as they would be for API sessions.
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp()
			if err != nil {
				return err
			}
			defer app.Close()

			task, err := app.tasks.FindTask(taskQuery)
			if err != nil {
				return err
			}

			req := &models.CreateSessionRequest{
				TaskID:       task.ID,
				Participants: participants,
			}
			if cmd.Flags().Changed("period") {
				req.InterventionPeriod = &period
			}

			session, err := app.sessions.CreateSession(req)
			if err != nil {
				return err
			}

			fmt.Println("ASTRA tutor demo. Type 'quit' to exit.")
			fmt.Println()
			fmt.Println(task.Description)

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Printf("%s: ", student)
				if !scanner.Scan() {
					break
				}

				text := scanner.Text()
				if strings.ToLower(strings.TrimSpace(text)) == "quit" ||
					strings.ToLower(strings.TrimSpace(text)) == "exit" {
					break
				}
				if strings.TrimSpace(text) == "" {
					continue
				}

				turn, err := app.sessions.PostMessage(cmd.Context(), session.ID, student, text)
				if err != nil {
					fmt.Printf("(turn failed: %v)\n\n", err)
					continue
				}

				if turn.Response == nil {
					fmt.Println("(No response from agent.)")
					fmt.Println()
					continue
				}

				label := "Tutor"
				if turn.Response.AgentRole == models.AgentRoleFacilitator {
					label = "Facilitator"
				}
				fmt.Printf("%s [%s]: %s\n\n", label, turn.Response.ActionTag, turn.Response.Content)
			}

			fmt.Println("Goodbye.")
			return nil
		},
	}

	cmd.Flags().StringVar(&taskQuery, "task", "sum-to-n", "Task id or name (fuzzy match)")
	cmd.Flags().StringVar(&student, "student", "student_A", "Student id to speak as")
	cmd.Flags().StringSliceVar(&participants, "participants", []string{"student_A", "student_B"}, "Participant ids")
	cmd.Flags().IntVar(&period, "period", 0, "Facilitator check period in student turns (0 disables)")

	return cmd
}
