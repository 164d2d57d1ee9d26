package client

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"caid/internal/content"
	"caid/internal/system"
)

// Source supplies the start-up data. *Client and Offline implement it.
type Source interface {
	CompanyInfo(ctx context.Context) (content.Company, error)
	Roadmap(ctx context.Context) (content.Roadmap, error)
	Team(ctx context.Context) (content.Team, error)
}

// FundingSource is implemented by sources that carry their own funding
// section. The backend has no funding route, so only Offline does.
type FundingSource interface {
	Funding(ctx context.Context) (content.Funding, error)
}

// Load fetches company, roadmap and team concurrently, plus funding when src
// is a FundingSource. Whatever succeeds is kept; degraded reports that at
// least one fetch failed, and err is the first failure.
func Load(ctx context.Context, src Source) (snap content.Snapshot, degraded bool, err error) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.Go(func() error {
		c, err := src.CompanyInfo(ctx)
		if err != nil {
			system.Logger.Warn("error fetching company info", "err", err)
			return err
		}
		mu.Lock()
		snap.Company = &c
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		r, err := src.Roadmap(ctx)
		if err != nil {
			system.Logger.Warn("error fetching roadmap", "err", err)
			return err
		}
		mu.Lock()
		snap.Roadmap = &r
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		t, err := src.Team(ctx)
		if err != nil {
			system.Logger.Warn("error fetching team", "err", err)
			return err
		}
		mu.Lock()
		snap.Team = &t
		mu.Unlock()
		return nil
	})
	if fs, ok := src.(FundingSource); ok {
		g.Go(func() error {
			f, err := fs.Funding(ctx)
			if err != nil {
				system.Logger.Warn("error fetching funding", "err", err)
				return err
			}
			mu.Lock()
			snap.Funding = &f
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	return snap, err != nil, err
}

// Offline serves a content catalog without a backend.
type Offline struct {
	Catalog content.Catalog
}

func (o Offline) CompanyInfo(context.Context) (content.Company, error) {
	if o.Catalog.Company == nil {
		return content.DefaultCompany(), nil
	}
	return *o.Catalog.Company, nil
}

func (o Offline) Roadmap(context.Context) (content.Roadmap, error) {
	if len(o.Catalog.Milestones) == 0 {
		return content.Roadmap{Milestones: content.DefaultMilestones()}, nil
	}
	return content.Roadmap{Milestones: append([]content.Milestone(nil), o.Catalog.Milestones...)}, nil
}

func (o Offline) Team(context.Context) (content.Team, error) {
	if len(o.Catalog.Team) == 0 {
		return content.Team{Founders: content.DefaultTeam()}, nil
	}
	return content.Team{Founders: append([]content.Member(nil), o.Catalog.Team...)}, nil
}

func (o Offline) Funding(context.Context) (content.Funding, error) {
	if o.Catalog.Funding == nil {
		return content.DefaultFunding(), nil
	}
	f := *o.Catalog.Funding
	f.Seeking = append([]string(nil), f.Seeking...)
	return f, nil
}

// ErrOffline is returned for writes that need a backend.
var ErrOffline = errors.New("offline mode: no backend configured")

// TrackCommand drops the event; there is nowhere to send it.
func (Offline) TrackCommand(context.Context, content.CommandTrack) error { return nil }

func (Offline) CreateInquiry(context.Context, content.InquiryCreate) (content.InquiryReceipt, error) {
	return content.InquiryReceipt{}, ErrOffline
}
