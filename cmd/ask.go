package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/courtside-labs/boxscore-cli/internal/model"
)

var (
	askGameID string
	askEngine string
)

var askCmd = &cobra.Command{
	Use:   "ask \"<question>\"",
	Short: "Ask both engines a question about one game and compare answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if askEngine != "" {
			cfg.Compare.SQLEngine = askEngine
		}

		env, err := initEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		game, err := env.Store.GetGame(cmd.Context(), askGameID)
		if err != nil {
			return eris.Wrap(err, "ask: load game")
		}

		cmp := env.Comparer.Run(cmd.Context(), args[0], *game)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Game: %s %d - %s %d (%s)\n",
			game.AwayTeam, game.AwayScore, game.HomeTeam, game.HomeScore, game.Date)
		fmt.Fprintf(out, "Question: %s\n\n", cmp.Question)
		printResult(out, "VISION", cmp.Vision)
		fmt.Fprintln(out)
		printResult(out, "SQL", cmp.SQL)
		return nil
	},
}

func printResult(w io.Writer, label string, r model.AgentResult) {
	fmt.Fprintf(w, "%s  (%.0f%% confident, %dms)\n", label, r.Confidence*100, r.TimeMS)
	fmt.Fprintln(w, strings.Repeat("-", len(label)+2))
	if !r.OK() {
		fmt.Fprintf(w, "error: %s\n", r.Error)
		return
	}
	fmt.Fprintln(w, r.Answer)
	if r.PatternName != "" {
		fmt.Fprintf(w, "pattern: %s\n", r.PatternName)
	}
	if r.SQLQuery != "" {
		fmt.Fprintf(w, "sql: %s\n", r.SQLQuery)
	}
}

func init() {
	askCmd.Flags().StringVar(&askGameID, "game", "", "game id to ask about (required)")
	askCmd.Flags().StringVar(&askEngine, "engine", "", "sql engine: semantic or analyst (default from config)")
	_ = askCmd.MarkFlagRequired("game")
	rootCmd.AddCommand(askCmd)
}
