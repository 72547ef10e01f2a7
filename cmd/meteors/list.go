package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-meteors/internal/registry"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered variant with how often it was played and its best score.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	// Stats are optional; a missing database just shows zeros
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		if stats, err = store.GetAllGamesStats(); err != nil {
			return err
		}
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Println("Variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %6s  %6s  %s\n", idW, "ID", "Title", "Played", "Best", "Board")
	fmt.Printf("  %-*s  %-18s  %6s  %6s  %s\n", idW, "--", "-----", "------", "----", "-----")
	for _, g := range games {
		played, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			played, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-18s  %6d  %6d  %s\n", idW, g.ID, g.Title, played, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'meteors play <id>' to play.")
	return nil
}
