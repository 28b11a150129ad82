package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var matchGameID string

var matchCmd = &cobra.Command{
	Use:   "match \"<question>\"",
	Short: "Show which pattern a question routes to, without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := initCatalog()
		if err != nil {
			return err
		}

		m, ok := catalog.Match(args[0])
		if !ok {
			fmt.Println("No pattern matched; the question would go to the SQL-synthesis engine.")
			return nil
		}

		fmt.Printf("pattern:    %s (%s)\n", m.Pattern.Name, m.Pattern.Category)
		fmt.Printf("confidence: %.2f\n", m.Confidence)
		if len(m.Params) > 0 {
			parts := make([]string, 0, len(m.Params))
			for k, v := range m.Params {
				parts = append(parts, k+"="+v)
			}
			fmt.Printf("params:     %s\n", strings.Join(parts, " "))
		}

		gameID := matchGameID
		if gameID == "" {
			gameID = "<game_id>"
		}
		sqlText, err := m.SQL(gameID)
		if err != nil {
			fmt.Printf("sql error:  %s\n", err)
			return nil
		}
		fmt.Printf("sql:\n%s\n", strings.TrimSpace(sqlText))
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchGameID, "game", "", "game id to substitute into the query")
	rootCmd.AddCommand(matchCmd)
}
