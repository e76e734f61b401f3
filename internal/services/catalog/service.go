package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"roomkey/internal/crypto"
	"roomkey/internal/domain"
	"roomkey/internal/parse"
)

// Service builds catalogs from an input source.
type Service struct {
	src domain.InputSource
	log *zap.Logger
}

// New returns a catalog service reading from src. A nil logger discards output.
func New(src domain.InputSource, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{src: src, log: log.Named("catalog")}
}

// Load reads the input once and parses it into a Catalog.
func (s *Service) Load() (*Catalog, error) {
	blob, err := s.src.ReadInput()
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	fp := crypto.Fingerprint(blob)
	s.log.Debug("input read", zap.Int("bytes", len(blob)), zap.Stringer("fingerprint", fp))

	cat, err := Load(parse.SplitLines(blob))
	if err != nil {
		s.log.Error("catalog load failed", zap.Stringer("fingerprint", fp), zap.Error(err))
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	cat.fp = fp

	s.log.Info("catalog loaded",
		zap.Int("records", cat.Len()),
		zap.Int("valid", cat.validCount()),
		zap.Stringer("fingerprint", fp),
	)
	return cat, nil
}
