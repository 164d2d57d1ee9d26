package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caid/internal/content"
)

func openMem(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCompanyInfo_UpsertReplacesSingleRow(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	_, err := s.CompanyInfo(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	c := content.DefaultCompany()
	saved, err := s.UpsertCompany(ctx, c)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	c2 := content.DefaultCompany()
	c2.About.Name = "Renamed"
	_, err = s.UpsertCompany(ctx, c2)
	require.NoError(t, err)

	got, err := s.CompanyInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.About.Name)
	assert.Equal(t, "Welcome to the frontline against synthetic media.", got.System.WelcomeMessage)
}

func TestMilestonesAndMembers_Ordering(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	_, err := s.CreateMilestone(ctx, content.Milestone{Target: "late", Priority: 3})
	require.NoError(t, err)
	_, err = s.CreateMilestone(ctx, content.Milestone{Target: "early", Priority: 1})
	require.NoError(t, err)
	ms, err := s.Milestones(ctx)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "early", ms[0].Target)

	_, err = s.CreateMember(ctx, content.Member{Name: "B", DisplayOrder: 2, Bio: "bio"})
	require.NoError(t, err)
	_, err = s.CreateMember(ctx, content.Member{Name: "A", DisplayOrder: 1, IsFounder: true})
	require.NoError(t, err)
	team, err := s.Members(ctx)
	require.NoError(t, err)
	require.Len(t, team, 2)
	assert.Equal(t, "A", team[0].Name)
	assert.True(t, team[0].IsFounder)
	assert.Equal(t, "bio", team[1].Bio)
}

func TestSeed_OnlyFillsEmptyTables(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	n, err := s.Seed(ctx, content.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 1+2+2, n)

	n, err = s.Seed(ctx, content.DefaultCatalog())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCommandStats(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rt := 12
	for i, cmd := range []string{"help", "about", "help", "help", "about", "team"} {
		_, err := s.TrackCommand(ctx, content.CommandEvent{
			Command:      cmd,
			SessionID:    "s1",
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
			ResponseTime: &rt,
		})
		require.NoError(t, err)
	}
	stats, err := s.CommandStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "help", stats[0].Command)
	assert.Equal(t, 3, stats[0].Count)
	assert.True(t, stats[0].LastUsed.Equal(base.Add(3*time.Minute)))
	assert.Equal(t, "about", stats[1].Command)
	assert.Equal(t, "team", stats[2].Command)
}

func TestInquiries_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)
	tick := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	for _, name := range []string{"first", "second", "third"} {
		q, err := s.CreateInquiry(ctx, content.InquiryCreate{Name: name, Email: name + "@x.io", Message: "m", InquiryType: "demo"})
		require.NoError(t, err)
		assert.Equal(t, content.StatusNew, q.Status)
		assert.Equal(t, content.DefaultSource, q.Source)
	}
	got, err := s.Inquiries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Name)
	assert.Equal(t, "second", got[1].Name)

	all, err := s.Inquiries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "caid.db")
	s, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
