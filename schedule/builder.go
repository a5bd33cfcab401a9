// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/lineup/favorites"
	"github.com/danielhkuo/lineup/metrics"
	"github.com/danielhkuo/lineup/models"
)

// Source is the data the builder joins. *repository.Repository satisfies it.
type Source interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	GetFestival(ctx context.Context, festivalID string) (models.Festival, error)
	GetFavorites(ctx context.Context, userID, festivalID string) ([]models.FavoriteKey, error)
}

// Builder produces personalized schedules.
type Builder struct {
	src    Source
	fanOut int
}

// NewBuilder returns a builder that fetches at most fanOut followed users'
// favorites at a time.
func NewBuilder(src Source, fanOut int) *Builder {
	if fanOut < 1 {
		fanOut = 1
	}
	return &Builder{src: src, fanOut: fanOut}
}

// followed pairs an edge with that user's favorites for the festival
type followed struct {
	edge  models.FollowEdge
	index *favorites.Index
}

// Build overlays the user's own favorites and those of everyone they follow
// onto the festival lineup.
func (b *Builder) Build(ctx context.Context, userID, festivalID string) (models.Schedule, error) {
	// 1. Resolve the user and the festival; either missing aborts the build
	user, err := b.src.GetUser(ctx, userID)
	if err != nil {
		return models.Schedule{}, err
	}

	festival, err := b.src.GetFestival(ctx, festivalID)
	if err != nil {
		return models.Schedule{}, err
	}

	// 2. The requester's own favorites
	own, err := b.src.GetFavorites(ctx, userID, festivalID)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to get favorites for %s: %w", userID, err)
	}
	mine := favorites.NewIndex(own)

	// 3. Followed users' favorites, one fetch each
	others, err := b.fetchFollowed(ctx, user.Following, festivalID)
	if err != nil {
		return models.Schedule{}, err
	}

	// 4. Annotate every band in stored order
	schedule := models.Schedule{
		FestivalID:    festivalID,
		FestivalName:  festival.Name,
		FestivalDates: festival.Dates,
		Presentations: make([]models.PresentationSchedule, 0, len(festival.Presentations)),
	}
	if schedule.FestivalDates == nil {
		schedule.FestivalDates = []string{}
	}

	for _, presentation := range festival.Presentations {
		day := models.PresentationSchedule{
			PresentationDay: presentation.Day,
			Bands:           make([]models.ScheduledBand, 0, len(presentation.Bands)),
		}

		for _, band := range presentation.Bands {
			entry := models.ScheduledBand{
				BandID:    band.BandID,
				BandName:  band.Name,
				StartTime: band.StartTime,
				EndTime:   band.EndTime,
				Stage:     band.Stage,
				Favorite:  mine.Contains(presentation.Day, band.BandID),
				Following: []models.FollowEdge{},
			}

			for _, f := range others {
				if f.index.Contains(presentation.Day, band.BandID) {
					entry.Following = append(entry.Following, f.edge)
				}
			}

			day.Bands = append(day.Bands, entry)
		}

		schedule.Presentations = append(schedule.Presentations, day)
	}

	return schedule, nil
}

// fetchFollowed loads each followed user's favorites concurrently. Results keep
// the order of the following list; a user followed twice is fetched once.
func (b *Builder) fetchFollowed(ctx context.Context, edges []models.FollowEdge, festivalID string) ([]followed, error) {
	seen := make(map[string]struct{}, len(edges))
	unique := make([]models.FollowEdge, 0, len(edges))
	for _, edge := range edges {
		if _, dup := seen[edge.UserID]; dup {
			continue
		}
		seen[edge.UserID] = struct{}{}
		unique = append(unique, edge)
	}

	metrics.ScheduleFollowedUsers.Observe(float64(len(unique)))

	out := make([]followed, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.fanOut)

	for i, edge := range unique {
		g.Go(func() error {
			keys, err := b.src.GetFavorites(gctx, edge.UserID, festivalID)
			if err != nil {
				return fmt.Errorf("failed to get favorites for followed user %s: %w", edge.UserID, err)
			}
			out[i] = followed{edge: edge, index: favorites.NewIndex(keys)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
