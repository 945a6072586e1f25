package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/google/uuid"
)

var ErrMissingDependency = errors.New("missing dependency")

// Maps converts uploaded mazes, stores them and serves them back through a cache.
type Maps struct {
	repo   i.MapRepo
	cache  i.MapCache
	logger i.Logger
}

// NewMapService creates the map service.
func NewMapService(repo i.MapRepo, cache i.MapCache, logger i.Logger) (i.MapService, error) {
	if repo == nil || cache == nil {
		return nil, ErrMissingDependency
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Maps{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// Create implements i.MapService.
func (s *Maps) Create(ctx context.Context, name string, cells [][]tilemap.MazeCell) (*dmn.Map, error) {
	checksum, err := dmn.Checksum(cells)
	if err != nil {
		return nil, err
	}

	unlock, err := s.cache.Lock(ctx, checksum)
	if err != nil {
		s.logger.Error(fmt.Sprintf("locking maze %s: %v", checksum, err))
		return nil, err
	}
	defer unlock()

	existing, err := s.repo.ByChecksum(ctx, checksum)
	if err == nil {
		s.logger.Info(fmt.Sprintf("maze %s already converted as map %s", checksum, existing.ID))
		return existing, nil
	}
	if !errors.Is(err, dmn.ErrMapNotFound) {
		return nil, err
	}

	m, err := dmn.NewMap(name, cells)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, m); err != nil {
		s.logger.Error(fmt.Sprintf("saving map %s: %v", m.ID, err))
		return nil, err
	}
	if err := s.cache.Set(ctx, m); err != nil {
		s.logger.Warn(fmt.Sprintf("caching map %s: %v", m.ID, err))
	}

	s.logger.Info(fmt.Sprintf("created map %s (%dx%d tiles)", m.ID, m.Cols, m.Rows))
	return m, nil
}

// ByID implements i.MapService.
func (s *Maps) ByID(ctx context.Context, id uuid.UUID) (*dmn.Map, error) {
	m, err := s.cache.Get(ctx, id)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, i.ErrCacheMiss) {
		s.logger.Warn(fmt.Sprintf("reading map %s from cache: %v", id, err))
	}

	m, err = s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, m); err != nil {
		s.logger.Warn(fmt.Sprintf("caching map %s: %v", id, err))
	}
	return m, nil
}
