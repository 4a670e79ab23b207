package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxncube/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored solves and per-size aggregates",
	RunE:  runStats,
}

var statsLimit int

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Number of recent solves to list")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	summary, err := repo.Summary()
	if err != nil {
		return err
	}
	if len(summary) == 0 {
		fmt.Println("No solves stored yet. Run: nxncube solve")
		return nil
	}

	fmt.Println(titleStyle.Render("Per-size summary"))
	for _, s := range summary {
		fmt.Printf("  %dx%d: %d solves, avg %.1f moves, best %d\n",
			s.CubeSize, s.CubeSize, s.Solves, s.AvgMoves, s.BestMoves)
	}
	fmt.Println()

	solves, err := repo.List(statsLimit)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Recent solves"))
	for _, s := range solves {
		line := fmt.Sprintf("  %s  %dx%d  %d moves",
			s.CreatedAt.Format(time.RFC3339), s.CubeSize, s.CubeSize, s.MoveCount)
		if s.DurationMs != nil {
			line += fmt.Sprintf("  %dms", *s.DurationMs)
		}
		if !s.CentersReduced {
			line += "  (incomplete)"
		}
		fmt.Println(line)
	}
	return nil
}
