// internal/results/results.go
// Package results holds the evaluation tables for the final fraud-detection
// models. The tables are compiled in and never change at runtime.
package results

// Performance column names, in display order.
const (
	MetricPrecision = "Precision"
	MetricRecall    = "Recall"
	MetricF1        = "F1"
	MetricROCAUC    = "ROC-AUC"
)

// Fairness metric names as they appear in the fairness table.
const (
	MetricSPD           = "SPD"
	MetricDPD           = "DPD"
	MetricEOD           = "EOD"
	MetricEqualizedOdds = "Equalized Odds"
	MetricMACE          = "MACE (overall)"
)

// Protected subgroups.
const (
	SubgroupGender = "Gender"
	SubgroupAge    = "Age"
)

// Evaluated models.
const (
	ModelRandomForest       = "Random Forest"
	ModelXGBoost            = "XGBoost"
	ModelLogisticRegression = "Logistic Regression"
)

// PerformanceRow is the final (non-SMOTE, custom weighting) performance of one model.
type PerformanceRow struct {
	Model     string  `json:"model" yaml:"model"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	ROCAUC    float64 `json:"roc_auc" yaml:"roc_auc"`
}

// Score returns the value of the named performance column.
func (r PerformanceRow) Score(metric string) (float64, bool) {
	switch metric {
	case MetricPrecision:
		return r.Precision, true
	case MetricRecall:
		return r.Recall, true
	case MetricF1:
		return r.F1, true
	case MetricROCAUC:
		return r.ROCAUC, true
	default:
		return 0, false
	}
}

// FairnessRow is one fairness measurement of a model over a protected subgroup.
type FairnessRow struct {
	Metric   string  `json:"metric" yaml:"metric"`
	Subgroup string  `json:"subgroup" yaml:"subgroup"`
	Model    string  `json:"model" yaml:"model"`
	Value    float64 `json:"value" yaml:"value"`
}

var performance = [...]PerformanceRow{
	{Model: ModelRandomForest, Precision: 0.3983, Recall: 0.7650, F1: 0.5239, ROCAUC: 0.9815},
	{Model: ModelXGBoost, Precision: 0.2551, Recall: 0.7506, F1: 0.3807, ROCAUC: 0.9654},
	{Model: ModelLogisticRegression, Precision: 0.0144, Recall: 0.7506, F1: 0.0283, ROCAUC: 0.8783},
}

// EOD (Age) repeats the DPD (Age) values. Both are kept as recorded.
var fairness = [...]FairnessRow{
	{MetricSPD, SubgroupGender, ModelRandomForest, -0.001858},
	{MetricSPD, SubgroupGender, ModelXGBoost, -0.002187},
	{MetricSPD, SubgroupGender, ModelLogisticRegression, -0.054855},
	{MetricSPD, SubgroupAge, ModelRandomForest, 0.000589},
	{MetricSPD, SubgroupAge, ModelXGBoost, 0.000917},
	{MetricSPD, SubgroupAge, ModelLogisticRegression, 0.021519},

	{MetricDPD, SubgroupGender, ModelRandomForest, -0.001858},
	{MetricDPD, SubgroupGender, ModelXGBoost, -0.002187},
	{MetricDPD, SubgroupGender, ModelLogisticRegression, -0.054855},
	{MetricDPD, SubgroupAge, ModelRandomForest, 0.002859},
	{MetricDPD, SubgroupAge, ModelXGBoost, 0.007427},
	{MetricDPD, SubgroupAge, ModelLogisticRegression, -0.031194},

	{MetricEOD, SubgroupGender, ModelRandomForest, 0.195487},
	{MetricEOD, SubgroupGender, ModelXGBoost, 0.192480},
	{MetricEOD, SubgroupGender, ModelLogisticRegression, 0.150998},
	{MetricEOD, SubgroupAge, ModelRandomForest, 0.002859},
	{MetricEOD, SubgroupAge, ModelXGBoost, 0.007427},
	{MetricEOD, SubgroupAge, ModelLogisticRegression, -0.031194},

	{MetricEqualizedOdds, SubgroupGender, ModelRandomForest, 0.169900},
	{MetricEqualizedOdds, SubgroupGender, ModelXGBoost, 0.098650},
	{MetricEqualizedOdds, SubgroupGender, ModelLogisticRegression, 0.007566},
	{MetricEqualizedOdds, SubgroupAge, ModelRandomForest, 0.02334},
	{MetricEqualizedOdds, SubgroupAge, ModelXGBoost, 0.02047},
	{MetricEqualizedOdds, SubgroupAge, ModelLogisticRegression, 0.00097},

	{MetricMACE, SubgroupGender, ModelRandomForest, 0.1080},
	{MetricMACE, SubgroupGender, ModelXGBoost, 0.149753},
	{MetricMACE, SubgroupGender, ModelLogisticRegression, 0.494949},
	{MetricMACE, SubgroupAge, ModelRandomForest, 0.191905},
	{MetricMACE, SubgroupAge, ModelXGBoost, 0.167727},
	{MetricMACE, SubgroupAge, ModelLogisticRegression, 0.740050},
}

// Performance returns a copy of the performance table in source order.
func Performance() []PerformanceRow {
	out := make([]PerformanceRow, len(performance))
	copy(out, performance[:])
	return out
}

// Fairness returns a copy of the fairness table in source order.
func Fairness() []FairnessRow {
	out := make([]FairnessRow, len(fairness))
	copy(out, fairness[:])
	return out
}

// Models returns the distinct model names in performance-table order.
func Models() []string {
	seen := make(map[string]struct{}, len(performance))
	models := make([]string, 0, len(performance))
	for _, row := range performance {
		if _, ok := seen[row.Model]; ok {
			continue
		}
		seen[row.Model] = struct{}{}
		models = append(models, row.Model)
	}
	return models
}

// PerformanceMetrics returns the performance column names in display order.
func PerformanceMetrics() []string {
	return []string{MetricPrecision, MetricRecall, MetricF1, MetricROCAUC}
}

// Subgroups returns the protected subgroups in the order options are listed.
func Subgroups() []string {
	return []string{SubgroupGender, SubgroupAge}
}
