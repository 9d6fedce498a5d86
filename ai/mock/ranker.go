package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/eventmatch/ai"
)

// MockRankingService is a test double for ai.RankingService.
// It allows custom behavior injection via function fields.
type MockRankingService struct {
	// RankCandidatesFunc is called by RankCandidates if set.
	// If nil, uses default deterministic behavior.
	RankCandidatesFunc func(ctx context.Context, req *ai.RankRequest) (*ai.RankOutcome, error)

	callCount int
}

// NewMockRankingService creates a mock ranking service with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockRankingService() *MockRankingService {
	return &MockRankingService{}
}

// RankCandidates returns the injected behavior's result, or a default
// selection of the first TopK candidates in presentation order.
func (m *MockRankingService) RankCandidates(ctx context.Context, req *ai.RankRequest) (*ai.RankOutcome, error) {
	m.callCount++

	if m.RankCandidatesFunc != nil {
		return m.RankCandidatesFunc(ctx, req)
	}

	limit := req.TopK
	if limit > len(req.Candidates) {
		limit = len(req.Candidates)
	}

	selections := make([]ai.RankedSelection, 0, limit)
	for i := 0; i < limit; i++ {
		selections = append(selections, ai.RankedSelection{
			Index:         req.Candidates[i].Index,
			Justification: fmt.Sprintf("mock justification for %s", req.Candidates[i].Name),
		})
	}

	return &ai.RankOutcome{
		Selections: selections,
		Rationale:  "mock rationale",
	}, nil
}

// CallCount returns the number of times RankCandidates was called.
func (m *MockRankingService) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRankingService) Reset() {
	m.callCount = 0
	m.RankCandidatesFunc = nil
}
