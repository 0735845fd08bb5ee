package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sourcingScores(score int) SourcingModelData {
	data := make(SourcingModelData, len(SourcingCriteria))
	for _, criterion := range SourcingCriteria {
		data[criterion.ID] = ScoredCriterion{Score: score}
	}
	return data
}

func TestCompareSourcingModels_Winner(t *testing.T) {
	tests := []struct {
		name   string
		scores SourcingModelData
		want   string
	}{
		{
			// Uniform fives sum each coefficient column; the open source
			// column carries the largest positive mass.
			name:   "uniform scores favor open source",
			scores: sourcingScores(5),
			want:   SourcingOpenSource,
		},
		{
			name: "differentiation and capability favor build",
			scores: SourcingModelData{
				CriterionStrategicDifferentiation: {Score: 5},
				CriterionInternalCapability:       {Score: 5},
				CriterionCustomizationDepth:       {Score: 5},
				CriterionVendorLockInRisk:         {Score: 5},
			},
			want: SourcingBuild,
		},
		{
			name: "fit and urgency favor buy",
			scores: SourcingModelData{
				CriterionRequirementsFit: {Score: 5},
				CriterionTimeToMarket:    {Score: 5},
			},
			want: SourcingBuy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareSourcingModels(tt.scores)
			require.NoError(t, err)
			require.Equal(t, tt.want, result.Recommendation)
		})
	}
}

func TestCompareSourcingModels_TieBreakPrecedence(t *testing.T) {
	// All zeros ties every candidate at 0; precedence picks Build.
	result, err := CompareSourcingModels(sourcingScores(0))
	require.NoError(t, err)
	require.Equal(t, SourcingBuild, result.Recommendation)
	require.Zero(t, result.Scores.Build)
	require.Zero(t, result.Scores.Buy)
	require.Zero(t, result.Scores.OpenSource)
}

func TestCompareSourcingModels_AlwaysReturnsAllScores(t *testing.T) {
	result, err := CompareSourcingModels(SourcingModelData{
		CriterionRequirementsFit: {Score: 4},
	})
	require.NoError(t, err)
	require.InDelta(t, -4, result.Scores.Build, 1e-9)
	require.InDelta(t, 12, result.Scores.Buy, 1e-9)
	require.InDelta(t, 8, result.Scores.OpenSource, 1e-9)
}

func TestCompareSourcingModels_DominanceIsMonotone(t *testing.T) {
	// Scaling every score up scales every candidate total linearly, so the
	// winning score of the dominant run can never drop.
	low, err := CompareSourcingModels(sourcingScores(1))
	require.NoError(t, err)
	high, err := CompareSourcingModels(sourcingScores(3))
	require.NoError(t, err)

	maxOf := func(s SourcingModelScores) float64 {
		m := s.Build
		if s.Buy > m {
			m = s.Buy
		}
		if s.OpenSource > m {
			m = s.OpenSource
		}
		return m
	}
	require.GreaterOrEqual(t, maxOf(high.Scores), maxOf(low.Scores))
}

func TestCompareSourcingModels_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		scores SourcingModelData
	}{
		{"unknown criterion", SourcingModelData{"nonsense": {Score: 3}}},
		{"score above range", SourcingModelData{CriterionTimeToMarket: {Score: 9}}},
		{"negative score", SourcingModelData{CriterionTimeToMarket: {Score: -2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompareSourcingModels(tt.scores)
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestSourcingTables_Consistent(t *testing.T) {
	require.Len(t, SourcingCriteria, 8)
	require.Len(t, sourcingCoefficients, 8)
	for _, criterion := range SourcingCriteria {
		_, ok := sourcingCoefficients[criterion.ID]
		require.True(t, ok, "criterion %q has no coefficient row", criterion.ID)
	}
}
