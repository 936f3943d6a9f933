package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doeshing/bddgen/internal/domain"
)

// parseScenarios decodes and validates the model output. Any malformed record
// rejects the whole batch; a partially valid batch is never returned.
func parseScenarios(raw string) (domain.GenerationResult, error) {
	var result domain.GenerationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidResponseFormat, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: model returned no scenarios", domain.ErrEmptyResponse)
	}
	for i, rec := range result {
		if strings.TrimSpace(rec.Title) == "" {
			return nil, fmt.Errorf("%w: scenario %d has no title", domain.ErrInvalidResponseFormat, i)
		}
		if len(rec.Steps) == 0 {
			return nil, fmt.Errorf("%w: scenario %d has no steps", domain.ErrInvalidResponseFormat, i)
		}
		for j, step := range rec.Steps {
			if strings.TrimSpace(step) == "" {
				return nil, fmt.Errorf("%w: scenario %d step %d is empty", domain.ErrInvalidResponseFormat, i, j)
			}
		}
	}
	return result, nil
}
