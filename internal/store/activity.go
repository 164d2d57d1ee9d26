package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"caid/internal/content"
)

// TrackCommand records one executed terminal command.
func (s *Store) TrackCommand(ctx context.Context, ev content.CommandEvent) (content.CommandEvent, error) {
	if ev.ID == "" {
		ev.ID = newID()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.now()
	}
	var rt sql.NullInt64
	if ev.ResponseTime != nil {
		rt = sql.NullInt64{Int64: int64(*ev.ResponseTime), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO terminal_analytics (id, command, ts_unix_ns, session_id, user_agent, response_time)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Command, ev.Timestamp.UnixNano(), ev.SessionID, ev.UserAgent, rt)
	if err != nil {
		return ev, fmt.Errorf("track command: %w", err)
	}
	return ev, nil
}

// CommandStats groups analytics by command, most used first.
func (s *Store) CommandStats(ctx context.Context) ([]content.CommandStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT command, COUNT(*) AS n, MAX(ts_unix_ns)
		FROM terminal_analytics
		GROUP BY command
		ORDER BY n DESC, command ASC`)
	if err != nil {
		return nil, fmt.Errorf("command stats: %w", err)
	}
	defer rows.Close()
	out := []content.CommandStat{}
	for rows.Next() {
		var st content.CommandStat
		var last int64
		if err := rows.Scan(&st.Command, &st.Count, &last); err != nil {
			return nil, fmt.Errorf("command stats: %w", err)
		}
		st.LastUsed = time.Unix(0, last).UTC()
		out = append(out, st)
	}
	return out, rows.Err()
}

// CreateInquiry stores a validated inquiry with status "new".
func (s *Store) CreateInquiry(ctx context.Context, in content.InquiryCreate) (content.Inquiry, error) {
	now := s.now()
	q := content.Inquiry{
		ID:          newID(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Message:     in.Message,
		InquiryType: in.InquiryType,
		Status:      content.StatusNew,
		Source:      content.DefaultSource,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO investor_inquiries (id, name, email, company, message, inquiry_type, status, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Name, q.Email, q.Company, q.Message, q.InquiryType, q.Status, q.Source, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return q, fmt.Errorf("create inquiry: %w", err)
	}
	return q, nil
}

// Inquiries returns up to limit inquiries, newest first.
func (s *Store) Inquiries(ctx context.Context, limit int) ([]content.Inquiry, error) {
	if limit <= 0 {
		limit = DefaultInquiryLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, company, message, inquiry_type, status, source, created_at, updated_at
		FROM investor_inquiries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("inquiries: %w", err)
	}
	defer rows.Close()
	out := []content.Inquiry{}
	for rows.Next() {
		var q content.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.Message, &q.InquiryType,
			&q.Status, &q.Source, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("inquiries: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
