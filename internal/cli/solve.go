package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxncube"
	"github.com/cubeforge/nxncube/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and reduce its centers",
	Long: `Scramble a cube of the given size with a seeded random sequence, then
reduce all six centers with block commutators.

The full solution transcript and per-block commutator statistics are printed
and, unless --no-save is given, stored in the database.`,
	RunE: runSolve,
}

var (
	solveSize       int
	solveSeed       int64
	solveLen        int
	solveNoSave     bool
	solveShowMoves  bool
	solveSingleFace string
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveSize, "size", "n", 0, "Cube size (default from config)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", time.Now().UnixNano(), "Scramble seed")
	solveCmd.Flags().IntVar(&solveLen, "scramble-len", 0, "Scramble length (default from config)")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not store the run in the database")
	solveCmd.Flags().BoolVar(&solveShowMoves, "moves", false, "Print the full solution transcript")
	solveCmd.Flags().StringVar(&solveSingleFace, "face", "", "Solve only one color's face (W, Y, G, B, R, O)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	size := cfg.CubeSize
	if solveSize > 0 {
		size = solveSize
	}
	length := cfg.ScrambleLength
	if solveLen > 0 {
		length = solveLen
	}

	cube := nxncube.NewCube(size)
	scramble := nxncube.Scramble(size, solveSeed, length)
	cube.ApplyAlg(scramble)

	fmt.Printf("Cube: %dx%d  seed: %d  scramble: %d moves\n", size, size, solveSeed, len(scramble))

	holder, err := nxncube.NewTrackerHolder(cube)
	if err != nil {
		return fmt.Errorf("failed to build trackers: %w", err)
	}
	defer holder.Cleanup()

	opts := []nxncube.Option{nxncube.WithLogger(log)}
	if cfg.Solver.CompleteSliceSwap {
		opts = append(opts, nxncube.WithCompleteSliceSwap())
	}
	if cfg.Solver.SanityChecks {
		opts = append(opts, nxncube.WithSanityChecks())
	}
	solver := nxncube.NewSolver(cube, opts...)

	start := time.Now()
	if solveSingleFace != "" {
		color, err := parseColor(solveSingleFace)
		if err != nil {
			return err
		}
		err = solver.SolveSingleFace(cmd.Context(), holder, color)
		if err != nil {
			return err
		}
	} else if err := solver.Solve(cmd.Context(), holder); err != nil {
		return err
	}
	elapsed := time.Since(start)

	solution := solver.Player().History()
	fmt.Printf("Solved in %d moves (%s)\n", len(solution), elapsed.Round(time.Millisecond))
	fmt.Printf("Centers reduced: %v\n", cube.CentersReduced())
	printBlockStats(solver.BlockStatistics())
	if solveShowMoves {
		fmt.Println()
		fmt.Println(moveStyle.Render(solution.Notation()))
	}

	if solveNoSave || solveSingleFace != "" {
		return nil
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	scrambleText := scramble.Notation()
	solutionText := solution.Notation()
	durationMs := elapsed.Milliseconds()
	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		CubeSize:       size,
		Seed:           &solveSeed,
		ScrambleText:   &scrambleText,
		SolutionText:   &solutionText,
		MoveCount:      len(solution),
		DurationMs:     &durationMs,
		CentersReduced: cube.CentersReduced(),
	}, solver.BlockStatistics())
	if err != nil {
		return fmt.Errorf("failed to save solve: %w", err)
	}
	fmt.Printf("Saved solve %s\n", id)
	return nil
}

func printBlockStats(stats map[int]int) {
	if len(stats) == 0 {
		return
	}
	sizes := make([]int, 0, len(stats))
	total := 0
	for size, count := range stats {
		sizes = append(sizes, size)
		total += count
	}
	sort.Ints(sizes)
	fmt.Printf("Commutators: %d", total)
	for _, size := range sizes {
		fmt.Printf("  %d-cell:%d", size, stats[size])
	}
	fmt.Println()
}

func parseColor(s string) (nxncube.Color, error) {
	for _, c := range nxncube.AllColors {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q (want one of W, Y, G, B, R, O)", s)
}
