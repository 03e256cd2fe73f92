package snapshot

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
)

var _ Store = (*SQLStore)(nil)

// SQLStore persists snapshots in the snapshots table. Boards are stored
// as msgpack blobs so the row stays compact regardless of board width.
type SQLStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore creates a Store backed by db.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(board *leaderboard.Board, filters string) (string, error) {
	if board == nil {
		return "", fmt.Errorf("cannot snapshot a nil board")
	}

	payload, err := msgpack.Marshal(board)
	if err != nil {
		return "", fmt.Errorf("failed to encode board for snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO snapshots (id, metric, label, filters, board, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, board.Metric, board.Label, filters, payload, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return id, nil
}

func (s *SQLStore) List(limit int) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT id, metric, label, filters, board, created_at FROM snapshots ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var (
			snap      Snapshot
			payload   []byte
			createdAt int64
		)
		if err := rows.Scan(&snap.ID, &snap.Metric, &snap.Label, &snap.Filters, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		var board leaderboard.Board
		if err := msgpack.Unmarshal(payload, &board); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %s: %w", snap.ID, err)
		}
		snap.Board = &board
		snap.CreatedAt = time.Unix(createdAt, 0).UTC()
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

func (s *SQLStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
