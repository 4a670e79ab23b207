package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxncube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a seeded scramble and the resulting cube",
	RunE:  runScramble,
}

var (
	scrambleSize int
	scrambleSeed int64
	scrambleLen  int
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleSize, "size", "n", 0, "Cube size (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", time.Now().UnixNano(), "Scramble seed")
	scrambleCmd.Flags().IntVar(&scrambleLen, "length", 0, "Scramble length (default from config)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	size := cfg.CubeSize
	if scrambleSize > 0 {
		size = scrambleSize
	}
	length := cfg.ScrambleLength
	if scrambleLen > 0 {
		length = scrambleLen
	}

	alg := nxncube.Scramble(size, scrambleSeed, length)
	cube := nxncube.NewCube(size)
	cube.ApplyAlg(alg)

	fmt.Printf("seed %d: %s\n\n", scrambleSeed, moveStyle.Render(alg.Notation()))
	fmt.Println(renderCube(cube))
	return nil
}
