package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceLiterals(t *testing.T) {
	rows := Performance()
	require.Len(t, rows, 3)

	assert.Equal(t, PerformanceRow{Model: "Random Forest", Precision: 0.3983, Recall: 0.7650, F1: 0.5239, ROCAUC: 0.9815}, rows[0])
	assert.Equal(t, PerformanceRow{Model: "XGBoost", Precision: 0.2551, Recall: 0.7506, F1: 0.3807, ROCAUC: 0.9654}, rows[1])
	assert.Equal(t, PerformanceRow{Model: "Logistic Regression", Precision: 0.0144, Recall: 0.7506, F1: 0.0283, ROCAUC: 0.8783}, rows[2])
}

func TestPerformanceReturnsCopy(t *testing.T) {
	rows := Performance()
	rows[0].Precision = 42
	rows[0].Model = "mutated"

	again := Performance()
	assert.Equal(t, "Random Forest", again[0].Model)
	assert.Equal(t, 0.3983, again[0].Precision)
}

func TestFairnessReturnsCopy(t *testing.T) {
	rows := Fairness()
	rows[0].Value = 1
	assert.Equal(t, -0.001858, Fairness()[0].Value)
}

func TestFairnessTripleIsUnique(t *testing.T) {
	type key struct{ metric, subgroup, model string }
	seen := map[key]bool{}
	for _, row := range Fairness() {
		k := key{row.Metric, row.Subgroup, row.Model}
		assert.Falsef(t, seen[k], "duplicate fairness row %+v", k)
		seen[k] = true
	}
	assert.Len(t, seen, 30)
}

func TestFairnessSpotValues(t *testing.T) {
	find := func(metric, subgroup, model string) float64 {
		t.Helper()
		for _, row := range Fairness() {
			if row.Metric == metric && row.Subgroup == subgroup && row.Model == model {
				return row.Value
			}
		}
		t.Fatalf("no row for %s/%s/%s", metric, subgroup, model)
		return 0
	}

	assert.Equal(t, -0.002187, find(MetricSPD, SubgroupGender, ModelXGBoost))
	assert.Equal(t, 0.1080, find(MetricMACE, SubgroupGender, ModelRandomForest))
	assert.Equal(t, 0.740050, find(MetricMACE, SubgroupAge, ModelLogisticRegression))
	assert.Equal(t, 0.00097, find(MetricEqualizedOdds, SubgroupAge, ModelLogisticRegression))
	// EOD and DPD share their Age values in the source data.
	assert.Equal(t, find(MetricDPD, SubgroupAge, ModelXGBoost), find(MetricEOD, SubgroupAge, ModelXGBoost))
}

func TestModelsInTableOrder(t *testing.T) {
	assert.Equal(t, []string{"Random Forest", "XGBoost", "Logistic Regression"}, Models())
}

func TestScore(t *testing.T) {
	row := Performance()[1]
	tests := []struct {
		metric string
		want   float64
		ok     bool
	}{
		{MetricPrecision, 0.2551, true},
		{MetricRecall, 0.7506, true},
		{MetricF1, 0.3807, true},
		{MetricROCAUC, 0.9654, true},
		{"Accuracy", 0, false},
	}
	for _, tt := range tests {
		got, ok := row.Score(tt.metric)
		assert.Equal(t, tt.ok, ok, tt.metric)
		assert.Equal(t, tt.want, got, tt.metric)
	}
}

func TestPerformanceMetricsAndSubgroups(t *testing.T) {
	assert.Equal(t, []string{"Precision", "Recall", "F1", "ROC-AUC"}, PerformanceMetrics())
	assert.Equal(t, []string{"Gender", "Age"}, Subgroups())
}
