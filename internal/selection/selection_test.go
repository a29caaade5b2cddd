package selection

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/fraudlens/internal/results"
)

func TestFairnessOptionsOrderAndLabels(t *testing.T) {
	opts := FairnessOptions(results.Fairness())
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	assert.Equal(t, []string{
		"SPD — Gender", "SPD — Age",
		"DPD — Gender", "DPD — Age",
		"EOD — Gender", "EOD — Age",
		"Equalized Odds — Gender", "Equalized Odds — Age",
		"MACE (overall) — Gender", "MACE (overall) — Age",
	}, labels)
	assert.Equal(t, FairnessOption{Label: "MACE (overall) — Age", Metric: "MACE (overall)", Subgroup: "Age"}, opts[9])
}

func TestFairnessOptionsOnlyPairsWithRows(t *testing.T) {
	rows := []results.FairnessRow{
		{Metric: "EOD", Subgroup: "Age", Model: "B", Value: 1},
		{Metric: "SPD", Subgroup: "Gender", Model: "A", Value: 1},
		{Metric: "EOD", Subgroup: "Gender", Model: "A", Value: 1},
		{Metric: "SPD", Subgroup: "Gender", Model: "B", Value: 1},
	}
	opts := FairnessOptions(rows)
	require.Len(t, opts, 3)
	// Metrics keep first-seen order, subgroups follow Gender then Age.
	assert.Equal(t, "EOD — Gender", opts[0].Label)
	assert.Equal(t, "EOD — Age", opts[1].Label)
	assert.Equal(t, "SPD — Gender", opts[2].Label)
}

func TestFairnessOptionsEmpty(t *testing.T) {
	assert.Empty(t, FairnessOptions(nil))
}

func TestDefault(t *testing.T) {
	sel := Default(Available())
	assert.Equal(t, []string{"Random Forest", "XGBoost", "Logistic Regression"}, sel.Models)
	assert.Equal(t, []string{"Precision", "Recall", "F1", "ROC-AUC"}, sel.PerfMetrics)
	assert.Equal(t, []string{
		"SPD — Gender", "DPD — Gender", "EOD — Gender", "Equalized Odds — Gender", "MACE (overall) — Gender",
	}, sel.FairnessLabels)
}

func TestDefaultSkipsMissingLabels(t *testing.T) {
	o := Options{
		Models:      []string{"A"},
		Fairness:    FairnessOptions([]results.FairnessRow{{Metric: "SPD", Subgroup: "Age", Model: "A"}, {Metric: "DPD", Subgroup: "Gender", Model: "A"}}),
		PerfMetrics: []string{"F1"},
	}
	assert.Equal(t, []string{"DPD — Gender"}, Default(o).FairnessLabels)
}

func TestDefaultDoesNotAliasOptions(t *testing.T) {
	o := Available()
	sel := Default(o)
	sel.Models[0] = "changed"
	assert.Equal(t, "Random Forest", o.Models[0])
}

func TestSanitize(t *testing.T) {
	o := Available()
	sel := o.Sanitize(Selection{
		Models:         []string{"XGBoost", "Bogus", "XGBoost", "Random Forest"},
		FairnessLabels: []string{"MACE (overall) — Age", "SPD - Gender"},
		PerfMetrics:    nil,
	})
	assert.Equal(t, []string{"XGBoost", "Random Forest"}, sel.Models)
	assert.Equal(t, []string{"MACE (overall) — Age"}, sel.FairnessLabels)
	assert.NotNil(t, sel.PerfMetrics)
	assert.Empty(t, sel.PerfMetrics)
}

func TestUnknown(t *testing.T) {
	o := Available()
	unknown := o.Unknown(Selection{Models: []string{"SVM"}, PerfMetrics: []string{"F1", "Accuracy"}})
	assert.Equal(t, []string{"SVM", "Accuracy"}, unknown)
}

func TestLookup(t *testing.T) {
	o := Available()
	opt, ok := o.Lookup("Equalized Odds — Age")
	require.True(t, ok)
	assert.Equal(t, "Equalized Odds", opt.Metric)
	assert.Equal(t, "Age", opt.Subgroup)

	_, ok = o.Lookup("Equalized Odds (Age)")
	assert.False(t, ok)
}

func TestFilterPerformanceEverySubset(t *testing.T) {
	rows := results.Performance()
	models := results.Models()
	for mask := 0; mask < 1<<len(models); mask++ {
		var subset []string
		for i, m := range models {
			if mask&(1<<i) != 0 {
				subset = append(subset, m)
			}
		}
		got := FilterPerformance(rows, subset)
		require.Len(t, got, len(subset), "subset %v", subset)
		for _, row := range got {
			assert.Contains(t, subset, row.Model)
			for _, literal := range rows {
				if literal.Model == row.Model {
					assert.Equal(t, literal, row)
				}
			}
		}
	}
}

func TestMelt(t *testing.T) {
	rows := FilterPerformance(results.Performance(), []string{"Random Forest", "XGBoost"})
	scores := Melt(rows, []string{"F1", "Precision"})
	assert.Equal(t, []Score{
		{Model: "Random Forest", Metric: "F1", Score: 0.5239},
		{Model: "XGBoost", Metric: "F1", Score: 0.3807},
		{Model: "Random Forest", Metric: "Precision", Score: 0.3983},
		{Model: "XGBoost", Metric: "Precision", Score: 0.2551},
	}, scores)

	assert.Empty(t, Melt(rows, nil))
	assert.Empty(t, Melt(nil, []string{"F1"}))
}

func TestFilterFairnessSortsByModel(t *testing.T) {
	opt := FairnessOption{Label: "SPD — Gender", Metric: "SPD", Subgroup: "Gender"}
	got := FilterFairness(results.Fairness(), opt, []string{"XGBoost", "Random Forest", "Logistic Regression"})
	require.Len(t, got, 3)
	assert.Equal(t, "Logistic Regression", got[0].Model)
	assert.Equal(t, "Random Forest", got[1].Model)
	assert.Equal(t, "XGBoost", got[2].Model)
}

func TestFilterFairnessIgnoresInsertionOrder(t *testing.T) {
	rows := []results.FairnessRow{
		{Metric: "SPD", Subgroup: "Age", Model: "Zeta", Value: 3},
		{Metric: "SPD", Subgroup: "Age", Model: "Alpha", Value: 1},
		{Metric: "SPD", Subgroup: "Gender", Model: "Beta", Value: 9},
		{Metric: "SPD", Subgroup: "Age", Model: "Mid", Value: 2},
	}
	opt := FairnessOption{Metric: "SPD", Subgroup: "Age"}
	got := FilterFairness(rows, opt, []string{"Zeta", "Mid", "Alpha", "Beta"})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{got[0].Model, got[1].Model, got[2].Model})
}

func TestFilterFairnessNoModels(t *testing.T) {
	opt, _ := Available().Lookup("MACE (overall) — Age")
	assert.Empty(t, FilterFairness(results.Fairness(), opt, nil))
}

func TestFromQueryDefaults(t *testing.T) {
	o := Available()
	assert.Equal(t, Default(o), FromQuery(url.Values{}, o))
}

func TestFromQueryExplicitlyEmpty(t *testing.T) {
	o := Available()
	sel := FromQuery(url.Values{"applied": {"1"}, "models": {"XGBoost"}}, o)
	assert.Equal(t, []string{"XGBoost"}, sel.Models)
	assert.Empty(t, sel.FairnessLabels)
	assert.Empty(t, sel.PerfMetrics)
}

func TestQueryRoundTrip(t *testing.T) {
	o := Available()
	want := Selection{
		Models:         []string{"XGBoost"},
		FairnessLabels: []string{"MACE (overall) — Age", "SPD — Gender"},
		PerfMetrics:    []string{},
	}
	assert.Equal(t, want, FromQuery(want.Query(), o))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"Random Forest", "XGBoost"}, ParseList(" Random Forest, ,XGBoost "))
	assert.Nil(t, ParseList(""))
}

func TestDecodeJSON(t *testing.T) {
	o := Available()

	sel, err := o.DecodeJSON([]byte(`{"models":["XGBoost"],"fairness":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"XGBoost"}, sel.Models)
	assert.Empty(t, sel.FairnessLabels)
	// absent selector keeps its default
	assert.Equal(t, o.PerfMetrics, sel.PerfMetrics)
}

func TestDecodeJSONRejectsUnknownValues(t *testing.T) {
	o := Available()

	_, err := o.DecodeJSON([]byte(`{"models":["SVM"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")

	_, err = o.DecodeJSON([]byte(`{"colour":"red"}`))
	require.Error(t, err)

	_, err = o.DecodeJSON([]byte(`{"models":`))
	require.Error(t, err)
}
