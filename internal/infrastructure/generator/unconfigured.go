package generator

import (
	"context"
	"fmt"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// Unconfigured returns a Generator that fails every call with a setup hint.
// It lets the rest of the tool (history, settings, export) work without an
// API key.
func Unconfigured(envVar string) ports.Generator {
	return unconfigured{envVar: envVar}
}

type unconfigured struct {
	envVar string
}

var _ ports.Generator = unconfigured{}

func (u unconfigured) Generate(context.Context, string) (domain.GenerationResult, error) {
	return nil, fmt.Errorf("%w: no API key configured, set %s", domain.ErrServiceUnavailable, u.envVar)
}
