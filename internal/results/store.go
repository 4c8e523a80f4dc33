package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SummaryRecord is one persisted statistics line: a tool's total/mean/stddev
// for one named input.
type SummaryRecord struct {
	SummaryID string
	RunID     string
	Tool      string
	Name      string
	Total     float64
	Mean      float64
	StdDev    float64
	CreatedAt int64
}

// SimilarityRecord is one persisted image comparison against a reference.
type SimilarityRecord struct {
	SimilarityID string
	RunID        string
	Reference    string
	Name         string
	MSE          float64
	SSIM         float64
	CreatedAt    int64
}

// Store provides persistence for analysis results.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(db *DB) *Store {
	return &Store{db: db.DB}
}

// InsertSummary persists a summary record. If SummaryID is empty, a UUID is
// generated.
func (s *Store) InsertSummary(rec *SummaryRecord) error {
	if rec.SummaryID == "" {
		rec.SummaryID = uuid.New().String()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.Exec(`
		INSERT INTO summaries (summary_id, run_id, tool, name, total, mean, std_dev, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SummaryID, rec.RunID, rec.Tool, rec.Name, rec.Total, rec.Mean, rec.StdDev, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert summary %s/%s: %w", rec.Tool, rec.Name, err)
	}
	return nil
}

// ListSummaries returns all summaries recorded by the given tool, oldest
// first so dashboard series keep input order within a run.
func (s *Store) ListSummaries(tool string) ([]*SummaryRecord, error) {
	rows, err := s.db.Query(`
		SELECT summary_id, run_id, tool, name, total, mean, std_dev, created_at
		FROM summaries
		WHERE tool = ?
		ORDER BY created_at ASC`, tool)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var recs []*SummaryRecord
	for rows.Next() {
		var r SummaryRecord
		if err := rows.Scan(&r.SummaryID, &r.RunID, &r.Tool, &r.Name, &r.Total, &r.Mean, &r.StdDev, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		recs = append(recs, &r)
	}
	return recs, rows.Err()
}

// InsertSimilarity persists an image similarity record. If SimilarityID is
// empty, a UUID is generated.
func (s *Store) InsertSimilarity(rec *SimilarityRecord) error {
	if rec.SimilarityID == "" {
		rec.SimilarityID = uuid.New().String()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.Exec(`
		INSERT INTO similarities (similarity_id, run_id, reference, name, mse, ssim, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SimilarityID, rec.RunID, rec.Reference, rec.Name, rec.MSE, rec.SSIM, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert similarity %s: %w", rec.Name, err)
	}
	return nil
}

// ListSimilarities returns all similarity records, oldest first.
func (s *Store) ListSimilarities() ([]*SimilarityRecord, error) {
	rows, err := s.db.Query(`
		SELECT similarity_id, run_id, reference, name, mse, ssim, created_at
		FROM similarities
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query similarities: %w", err)
	}
	defer rows.Close()

	var recs []*SimilarityRecord
	for rows.Next() {
		var r SimilarityRecord
		if err := rows.Scan(&r.SimilarityID, &r.RunID, &r.Reference, &r.Name, &r.MSE, &r.SSIM, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan similarity: %w", err)
		}
		recs = append(recs, &r)
	}
	return recs, rows.Err()
}
