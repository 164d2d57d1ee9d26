package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"caid/internal/content"
	"caid/internal/terminal"
)

type fakeSource struct {
	failRoadmap bool
}

func (f fakeSource) CompanyInfo(context.Context) (content.Company, error) {
	return content.DefaultCompany(), nil
}

func (f fakeSource) Roadmap(context.Context) (content.Roadmap, error) {
	if f.failRoadmap {
		return content.Roadmap{}, errors.New("connection refused")
	}
	return content.Roadmap{Milestones: content.DefaultMilestones()}, nil
}

func (f fakeSource) Team(context.Context) (content.Team, error) {
	return content.Team{Founders: content.DefaultTeam()}, nil
}

func TestLoad_AllSucceed(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	snap, degraded, err := Load(context.Background(), fakeSource{})
	if err != nil || degraded {
		t.Fatalf("unexpected failure: degraded=%v err=%v", degraded, err)
	}
	if snap.Company == nil || snap.Roadmap == nil || snap.Team == nil {
		t.Fatalf("snapshot incomplete: %+v", snap)
	}
}

func TestLoad_PartialFailureIsDegraded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	snap, degraded, err := Load(context.Background(), fakeSource{failRoadmap: true})
	if !degraded || err == nil {
		t.Fatalf("expected degraded load, got degraded=%v err=%v", degraded, err)
	}
	if snap.Roadmap != nil {
		t.Fatal("failed section should stay nil")
	}
	if snap.Company == nil || snap.Team == nil {
		t.Fatal("successful sections should be kept")
	}
}

func TestOffline(t *testing.T) {
	src := Offline{Catalog: content.DefaultCatalog()}
	snap, degraded, err := Load(context.Background(), src)
	if err != nil || degraded {
		t.Fatalf("offline load failed: %v", err)
	}
	if len(snap.Team.Founders) != 2 {
		t.Fatalf("unexpected team: %+v", snap.Team)
	}
}

func TestOfflineWrites(t *testing.T) {
	src := Offline{}
	if err := src.TrackCommand(context.Background(), content.CommandTrack{Command: "help"}); err != nil {
		t.Fatalf("track should be a no-op: %v", err)
	}
	if _, err := src.CreateInquiry(context.Background(), content.InquiryCreate{}); !errors.Is(err, ErrOffline) {
		t.Fatalf("want ErrOffline, got %v", err)
	}
}

func TestOffline_CatalogFundingReachesInterpreter(t *testing.T) {
	cat, err := content.ParseCatalog([]byte("funding:\n  stage: Series A\n  target: $10M\n  seeking:\n    - Strategic partners\n"))
	if err != nil {
		t.Fatal(err)
	}
	snap, degraded, err := Load(context.Background(), Offline{Catalog: cat})
	if err != nil || degraded {
		t.Fatalf("offline load failed: degraded=%v err=%v", degraded, err)
	}
	if snap.Funding == nil || snap.Funding.Stage != "Series A" {
		t.Fatalf("catalog funding dropped: %+v", snap.Funding)
	}
	var stage string
	for _, ln := range terminal.Respond("funding", snap) {
		if strings.HasPrefix(ln.Text, "> Stage:") {
			stage = ln.Text
		}
	}
	if stage != "> Stage: Series A" {
		t.Fatalf("stage line = %q", stage)
	}
}

func TestOffline_ZeroValueFallsBackToDefaults(t *testing.T) {
	snap, _, err := Load(context.Background(), Offline{})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Roadmap.Milestones) != len(content.DefaultMilestones()) {
		t.Fatalf("roadmap = %+v", snap.Roadmap)
	}
	if len(snap.Team.Founders) != len(content.DefaultTeam()) {
		t.Fatalf("team = %+v", snap.Team)
	}
	if snap.Funding == nil || snap.Funding.Stage != content.DefaultFunding().Stage {
		t.Fatalf("funding = %+v", snap.Funding)
	}
	for _, ln := range terminal.Respond("roadmap", snap) {
		if ln.Text == "Roadmap data not available." {
			t.Fatal("zero-value Offline should not report missing roadmap")
		}
	}
}
