package checkers

import (
	"context"
	"errors"
)

var ErrCatalogNotLoaded = errors.New("skill catalog not loaded")

// CatalogState is satisfied by *skill.Cache.
type CatalogState interface {
	Loaded() bool
}

// CatalogChecker reports not ready until the first catalog snapshot is published.
type CatalogChecker struct {
	catalog CatalogState
}

func NewCatalogChecker(catalog CatalogState) *CatalogChecker {
	return &CatalogChecker{catalog: catalog}
}

func (c *CatalogChecker) Name() string { return "skill_catalog" }

func (c *CatalogChecker) Check(ctx context.Context) error {
	if !c.catalog.Loaded() {
		return ErrCatalogNotLoaded
	}
	return nil
}
