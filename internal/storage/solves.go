package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solver run.
type Solve struct {
	SolveID        string
	CreatedAt      time.Time
	CubeSize       int
	Seed           *int64
	ScrambleText   *string
	SolutionText   *string
	MoveCount      int
	DurationMs     *int64
	CentersReduced bool
}

// BlockStat counts commutators of one block size within a solve.
type BlockStat struct {
	BlockSize   int
	Commutators int
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a completed solve together with its block statistics and
// returns the new solve ID.
func (r *SolveRepository) Create(s Solve, stats map[int]int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, cube_size, seed, scramble_text, solution_text, move_count, duration_ms, centers_reduced)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), s.CubeSize, s.Seed, s.ScrambleText, s.SolutionText, s.MoveCount, s.DurationMs, boolToInt(s.CentersReduced))
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}

		for size, count := range stats {
			_, err := tx.Exec(`
				INSERT INTO block_stats (solve_id, block_size, commutators)
				VALUES (?, ?, ?)
			`, id, size, count)
			if err != nil {
				return fmt.Errorf("failed to store block stat: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a solve by ID. A missing solve returns nil without error.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var reduced int

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, cube_size, seed, scramble_text, solution_text, move_count, duration_ms, centers_reduced
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.CubeSize, &s.Seed,
		&s.ScrambleText, &s.SolutionText, &s.MoveCount, &s.DurationMs, &reduced,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.CentersReduced = reduced != 0

	return &s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, cube_size, seed, scramble_text, solution_text, move_count, duration_ms, centers_reduced
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		var reduced int

		err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.CubeSize, &s.Seed,
			&s.ScrambleText, &s.SolutionText, &s.MoveCount, &s.DurationMs, &reduced,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		s.CentersReduced = reduced != 0

		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// BlockStats retrieves the per-block commutator counts of a solve.
func (r *SolveRepository) BlockStats(solveID string) ([]BlockStat, error) {
	rows, err := r.db.Query(`
		SELECT block_size, commutators
		FROM block_stats
		WHERE solve_id = ?
		ORDER BY block_size
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get block stats: %w", err)
	}
	defer rows.Close()

	var stats []BlockStat
	for rows.Next() {
		var b BlockStat
		if err := rows.Scan(&b.BlockSize, &b.Commutators); err != nil {
			return nil, fmt.Errorf("failed to scan block stat: %w", err)
		}
		stats = append(stats, b)
	}

	return stats, rows.Err()
}

// SizeSummary aggregates solves per cube size.
type SizeSummary struct {
	CubeSize  int
	Solves    int
	AvgMoves  float64
	BestMoves int
}

// Summary aggregates all stored solves by cube size.
func (r *SolveRepository) Summary() ([]SizeSummary, error) {
	rows, err := r.db.Query(`
		SELECT cube_size, COUNT(*), AVG(move_count), MIN(move_count)
		FROM solves
		GROUP BY cube_size
		ORDER BY cube_size
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize solves: %w", err)
	}
	defer rows.Close()

	var out []SizeSummary
	for rows.Next() {
		var s SizeSummary
		if err := rows.Scan(&s.CubeSize, &s.Solves, &s.AvgMoves, &s.BestMoves); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Delete deletes a solve and its block stats.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
