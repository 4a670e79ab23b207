package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cubeforge/nxncube"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a center solve play out move by move",
	Long: `Solve the scrambled cube offline, then replay the solution on screen one
move at a time.

  nxncube watch -n 5 --seed 42
  nxncube watch --step            # Advance manually with SPACE`,
	RunE: runWatch,
}

var (
	watchSize  int
	watchSeed  int64
	watchLen   int
	watchSpeed float64
	watchStep  bool
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchSize, "size", "n", 0, "Cube size (default from config)")
	watchCmd.Flags().Int64Var(&watchSeed, "seed", time.Now().UnixNano(), "Scramble seed")
	watchCmd.Flags().IntVar(&watchLen, "scramble-len", 0, "Scramble length (default from config)")
	watchCmd.Flags().Float64VarP(&watchSpeed, "speed", "s", 1.0, "Playback speed multiplier")
	watchCmd.Flags().BoolVarP(&watchStep, "step", "t", false, "Step through moves manually")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	size := cfg.CubeSize
	if watchSize > 0 {
		size = watchSize
	}
	length := cfg.ScrambleLength
	if watchLen > 0 {
		length = watchLen
	}

	scramble := nxncube.Scramble(size, watchSeed, length)

	// Solve offline first; the TUI replays the finished transcript.
	work := nxncube.NewCube(size)
	work.ApplyAlg(scramble)
	holder, err := nxncube.NewTrackerHolder(work)
	if err != nil {
		return fmt.Errorf("failed to build trackers: %w", err)
	}
	defer holder.Cleanup()
	solver := nxncube.NewSolver(work)
	if err := solver.Solve(cmd.Context(), holder); err != nil {
		return err
	}
	solution := solver.Player().History()

	display := nxncube.NewCube(size)
	display.ApplyAlg(scramble)

	model := newWatchModel(display, scramble, solution, watchSpeed, watchStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

// Watch model
type watchModel struct {
	cube      *nxncube.Cube
	scramble  nxncube.Algorithm
	solution  nxncube.Algorithm
	moveIndex int
	speed     float64
	stepMode  bool
	paused    bool
	quitting  bool
}

func newWatchModel(cube *nxncube.Cube, scramble, solution nxncube.Algorithm, speed float64, stepMode bool) *watchModel {
	return &watchModel{
		cube:     cube,
		scramble: scramble,
		solution: solution,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
	}
}

type watchTickMsg time.Time

func (m *watchModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNext()
}

func (m *watchModel) scheduleNext() tea.Cmd {
	if m.moveIndex >= len(m.solution) {
		return nil
	}
	delay := time.Duration(float64(200*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m *watchModel) advance() {
	if m.moveIndex < len(m.solution) {
		m.cube.Apply(m.solution[m.moveIndex])
		m.moveIndex++
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			} else {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNext()
				}
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNext()
			}

		case "r":
			fresh := nxncube.NewCube(m.cube.Size())
			fresh.ApplyAlg(m.scramble)
			m.cube = fresh
			m.moveIndex = 0

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case watchTickMsg:
		if !m.paused {
			m.advance()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return "Watch ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("nxncube center solve"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.moveIndex, len(m.solution))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.1fx speed)\n", m.speed))
	if m.cube.CentersReduced() {
		b.WriteString(statusStyle.Render("Centers reduced"))
		b.WriteByte('\n')
	}
	b.WriteString("\n")

	b.WriteString(renderCube(m.cube))
	b.WriteString("\n")

	if m.moveIndex > 0 {
		start := 0
		if m.moveIndex > 20 {
			start = m.moveIndex - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(m.solution[start:m.moveIndex].Notation()))
		b.WriteString("\n")
	}
	if m.moveIndex < len(m.solution) {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Next: %s", m.solution[m.moveIndex])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
