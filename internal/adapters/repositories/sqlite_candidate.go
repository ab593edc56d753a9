package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/platform/db"
)

// SQLite-backed implementation of the CandidateRepository port. Line columns
// are stored as JSON, matching how the rest of the system exchanges them.
type SQLiteCandidateRepo struct {
	db db.DBTX
}

func NewSQLiteCandidateRepo(dbtx db.DBTX) *SQLiteCandidateRepo {
	return &SQLiteCandidateRepo{db: dbtx}
}

func (r *SQLiteCandidateRepo) Save(ctx context.Context, c *domain.Candidate) error {
	itinerary, err := json.Marshal(c.ItineraryLines)
	if err != nil {
		return fmt.Errorf("save candidate: encode itinerary lines: %w", err)
	}
	travelLines, err := json.Marshal(c.TravelLines)
	if err != nil {
		return fmt.Errorf("save candidate: encode travel lines: %w", err)
	}

	query := `
	INSERT INTO candidates (
		id, prep_id, order_index, dest_lat, dest_lng,
		itinerary_lines, travel_summary, travel_lines, travel_total_min
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.PrepID, c.OrderIndex, c.Dest.Lat, c.Dest.Lng,
		string(itinerary), c.TravelSummary, string(travelLines), c.TravelTotalMin,
	)
	if err != nil {
		return fmt.Errorf("save candidate: %w", err)
	}
	return nil
}

func (r *SQLiteCandidateRepo) ListByPrepOrdered(ctx context.Context, prepID string) ([]*domain.Candidate, error) {
	query := `
	SELECT id, prep_id, order_index, dest_lat, dest_lng,
		itinerary_lines, travel_summary, travel_lines, travel_total_min
	FROM candidates
	WHERE prep_id = ?
	ORDER BY order_index ASC;
	`
	rows, err := r.db.QueryContext(ctx, query, prepID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: query candidates table: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Candidate, 0, 5)
	for rows.Next() {
		var c domain.Candidate
		var itinerary, travelLines string
		err := rows.Scan(
			&c.ID, &c.PrepID, &c.OrderIndex, &c.Dest.Lat, &c.Dest.Lng,
			&itinerary, &c.TravelSummary, &travelLines, &c.TravelTotalMin,
		)
		if err != nil {
			return nil, fmt.Errorf("list candidates: scan row: %w", err)
		}

		if err := json.Unmarshal([]byte(itinerary), &c.ItineraryLines); err != nil {
			return nil, fmt.Errorf("list candidates: decode itinerary lines: %w", err)
		}
		if err := json.Unmarshal([]byte(travelLines), &c.TravelLines); err != nil {
			return nil, fmt.Errorf("list candidates: decode travel lines: %w", err)
		}

		out = append(out, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: row iteration: %w", err)
	}

	return out, nil
}

func (r *SQLiteCandidateRepo) DeleteByPrep(ctx context.Context, prepID string) error {
	query := `DELETE FROM candidates WHERE prep_id = ?;`
	if _, err := r.db.ExecContext(ctx, query, prepID); err != nil {
		return fmt.Errorf("delete candidates of prep: %w", err)
	}
	return nil
}
