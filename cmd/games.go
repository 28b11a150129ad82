package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courtside-labs/boxscore-cli/internal/model"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List finished games with a boxscore screenshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		games, err := st.ListGames(cmd.Context())
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Println("No queryable games found.")
			return nil
		}

		for _, g := range games {
			fmt.Printf("%-14s %s  %s %d - %s %d  (%s)\n",
				g.ID, g.Date, g.AwayAbbrev, g.AwayScore, g.HomeAbbrev, g.HomeScore, g.Status)
		}

		fmt.Println("\nQuick questions:")
		for _, q := range model.QuickQuestions {
			fmt.Println("  -", q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}
