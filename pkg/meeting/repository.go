package meeting

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Store(ctx context.Context, record Record) error
	GetRecent(ctx context.Context, limit int) ([]Record, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, record Record) error {
	query := `INSERT INTO meeting_record (
                            uid,
                            summary,
                            description,
                            attendee_email,
                            start_time,
                            end_time,
                            meeting_link,
                            status,
                            created_at
						) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		record.Uid,
		record.Summary,
		record.Description,
		record.AttendeeEmail,
		record.StartTime.UTC(),
		record.EndTime.UTC(),
		record.MeetingLink,
		record.Status,
		record.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store meeting record: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetRecent(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT uid, summary, description, attendee_email, start_time, end_time, meeting_link, status, created_at
				FROM meeting_record
				ORDER BY created_at DESC, uid
				LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		err := rows.Scan(
			&record.Uid,
			&record.Summary,
			&record.Description,
			&record.AttendeeEmail,
			&record.StartTime,
			&record.EndTime,
			&record.MeetingLink,
			&record.Status,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meeting records: %w", err)
	}
	return records, nil
}
