package archive

import "MetalWatch/internal/model"

// NoopArchive is a no-op implementation used when SQLite is not configured.
type NoopArchive struct{}

func NewNoopArchive() *NoopArchive { return &NoopArchive{} }

func (n *NoopArchive) RecordSeries(_ string, _ []model.PricePoint) error { return nil }
func (n *NoopArchive) RecordQuote(_ string, _ model.LatestQuote) error   { return nil }
func (n *NoopArchive) Close() error                                      { return nil }
