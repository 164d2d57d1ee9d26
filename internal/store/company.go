package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caid/internal/content"
)

// CompanyInfo returns the stored company record or ErrNotFound.
func (s *Store) CompanyInfo(ctx context.Context) (content.Company, error) {
	var c content.Company
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, mission, description, urgency, email, demo, pitch,
		       version, status, welcome_message, created_at, updated_at
		FROM company_info LIMIT 1`)
	err := row.Scan(&c.ID, &c.About.Name, &c.About.Mission, &c.About.Description, &c.About.Urgency,
		&c.Contact.Email, &c.Contact.Demo, &c.Contact.Pitch,
		&c.System.Version, &c.System.Status, &c.System.WelcomeMessage, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	if err != nil {
		return c, fmt.Errorf("company info: %w", err)
	}
	return c, nil
}

// UpsertCompany replaces the single company record.
func (s *Store) UpsertCompany(ctx context.Context, c content.Company) (content.Company, error) {
	now := s.now()
	if c.ID == "" {
		c.ID = newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return c, fmt.Errorf("upsert company: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM company_info`); err != nil {
		return c, fmt.Errorf("upsert company: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO company_info (id, name, mission, description, urgency, email, demo, pitch,
			version, status, welcome_message, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.About.Name, c.About.Mission, c.About.Description, c.About.Urgency,
		c.Contact.Email, c.Contact.Demo, c.Contact.Pitch,
		c.System.Version, c.System.Status, c.System.WelcomeMessage, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return c, fmt.Errorf("upsert company: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return c, fmt.Errorf("upsert company: %w", err)
	}
	return c, nil
}

// Milestones returns the roadmap ordered by priority.
func (s *Store) Milestones(ctx context.Context) ([]content.Milestone, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, target, product, function, status, priority, created_at, updated_at
		FROM roadmap_milestones ORDER BY priority ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("milestones: %w", err)
	}
	defer rows.Close()
	out := []content.Milestone{}
	for rows.Next() {
		var m content.Milestone
		if err := rows.Scan(&m.ID, &m.Target, &m.Product, &m.Function, &m.Status, &m.Priority, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("milestones: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) CreateMilestone(ctx context.Context, m content.Milestone) (content.Milestone, error) {
	now := s.now()
	if m.ID == "" {
		m.ID = newID()
	}
	if m.Priority == 0 {
		m.Priority = 1
	}
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO roadmap_milestones (id, target, product, function, status, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Target, m.Product, m.Function, m.Status, m.Priority, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return m, fmt.Errorf("create milestone: %w", err)
	}
	return m, nil
}

// Members returns the team ordered by display order.
func (s *Store) Members(ctx context.Context) ([]content.Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, focus, bio, image, linkedin, is_founder, display_order, created_at, updated_at
		FROM team_members ORDER BY display_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("members: %w", err)
	}
	defer rows.Close()
	out := []content.Member{}
	for rows.Next() {
		var m content.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Focus, &m.Bio, &m.Image, &m.LinkedIn,
			&m.IsFounder, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) CreateMember(ctx context.Context, m content.Member) (content.Member, error) {
	now := s.now()
	if m.ID == "" {
		m.ID = newID()
	}
	if m.DisplayOrder == 0 {
		m.DisplayOrder = 1
	}
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_members (id, name, role, focus, bio, image, linkedin, is_founder, display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Role, m.Focus, m.Bio, m.Image, m.LinkedIn, m.IsFounder, m.DisplayOrder, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return m, fmt.Errorf("create member: %w", err)
	}
	return m, nil
}

// Seed writes catalog content into empty tables. Company info is only written
// when no record exists. It returns how many rows were inserted.
func (s *Store) Seed(ctx context.Context, cat content.Catalog) (int, error) {
	n := 0
	if cat.Company != nil {
		if _, err := s.CompanyInfo(ctx); errors.Is(err, ErrNotFound) {
			if _, err := s.UpsertCompany(ctx, *cat.Company); err != nil {
				return n, err
			}
			n++
		} else if err != nil {
			return n, err
		}
	}
	ms, err := s.Milestones(ctx)
	if err != nil {
		return n, err
	}
	if len(ms) == 0 {
		for _, m := range cat.Milestones {
			if _, err := s.CreateMilestone(ctx, m); err != nil {
				return n, err
			}
			n++
		}
	}
	team, err := s.Members(ctx)
	if err != nil {
		return n, err
	}
	if len(team) == 0 {
		for _, m := range cat.Team {
			if _, err := s.CreateMember(ctx, m); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}
