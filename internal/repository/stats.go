package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"
)

// Summary tallies finished games from the human player's point of view.
type Summary struct {
	Wins   int
	Losses int
	Draws  int
}

type StatsRepository interface {
	RecordResult(ctx context.Context, difficulty, result string) error
	Summary(ctx context.Context) (*Summary, error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

func (that *dbStats) RecordResult(ctx context.Context, difficulty, result string) error {
	query := `INSERT INTO results (difficulty, result, finished_at) VALUES (?, ?, ?)`

	if _, err := that.conn.ExecContext(ctx, query, difficulty, result, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}

	return nil
}

func (that *dbStats) Summary(ctx context.Context) (*Summary, error) {
	query := `SELECT result, COUNT(*) FROM results GROUP BY result`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query results summary: %w", err)
	}
	defer rows.Close()

	summary := &Summary{}
	for rows.Next() {
		var result string
		var count int
		if err = rows.Scan(&result, &count); err != nil {
			return nil, fmt.Errorf("failed to scan results row: %w", err)
		}

		switch result {
		case ResultWin:
			summary.Wins = count
		case ResultLoss:
			summary.Losses = count
		case ResultDraw:
			summary.Draws = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results rows: %w", err)
	}

	return summary, nil
}
