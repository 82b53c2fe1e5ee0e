package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"lifeagent/internal/modules/mobile/domain"
	mobileout "lifeagent/internal/modules/mobile/port/out"
)

type MobileService struct {
	origin mobileout.Origin
	cache  mobileout.Cache
	log    hclog.Logger
}

func NewMobileService(origin mobileout.Origin, cache mobileout.Cache, log hclog.Logger) *MobileService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &MobileService{origin: origin, cache: cache, log: log}
}

// Install fetches every asset before caching any, so a failed install leaves the cache untouched.
func (s *MobileService) Install(ctx context.Context) error {
	fetched := make([]domain.Response, 0, len(domain.Assets))
	for _, asset := range domain.Assets {
		resp, err := s.origin.Fetch(ctx, asset)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		fetched = append(fetched, resp)
	}
	for _, resp := range fetched {
		if err := s.cache.Put(ctx, domain.CacheName, resp); err != nil {
			return fmt.Errorf("store %s: %w", resp.Path, err)
		}
	}
	s.log.Info("cache shell installed", "cache", domain.CacheName, "assets", len(fetched))
	return nil
}

// Fetch serves cache-first and falls back to the origin without storing the result.
func (s *MobileService) Fetch(ctx context.Context, path string) (domain.Response, bool, error) {
	resp, ok, err := s.cache.Match(ctx, domain.CacheName, path)
	if err != nil {
		s.log.Warn("cache match failed", "path", path, "error", err)
	} else if ok {
		return resp, true, nil
	}
	resp, err = s.origin.Fetch(ctx, path)
	if err != nil {
		return domain.Response{}, false, err
	}
	return resp, false, nil
}
