package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxncube"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Apply a move sequence to a solved cube and render it",
	Long: `Apply a move sequence to a solved cube and render the unfolded net.

Moves use standard notation; inner layers take a leading 1-based index:

  nxncube show -n 5 R U2 2M' x`,
	RunE: runShow,
}

var showSize int

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showSize, "size", "n", 0, "Cube size (default from config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	size := cfg.CubeSize
	if showSize > 0 {
		size = showSize
	}

	alg, err := nxncube.ParseAlg(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("bad move sequence: %w", err)
	}

	cube := nxncube.NewCube(size)
	cube.ApplyAlg(alg)

	if len(alg) > 0 {
		fmt.Printf("%s\n\n", moveStyle.Render(alg.Notation()))
	}
	fmt.Println(renderCube(cube))
	return nil
}
