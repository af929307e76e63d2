package schema

// Strategy value objects declare how a later cleaning/preprocessing pass
// should treat the conditions a profile surfaced. Profiling itself never
// applies them.

// NAStrategy declares missing-value handling for a dataset.
type NAStrategy struct {
	DropNA           bool             `json:"drop_na"`
	ImputationScheme ImputationScheme `json:"imputation_scheme"`
}

// ImbalanceStrategy declares target-imbalance handling.
type ImbalanceStrategy struct {
	Sampling string `json:"sampling"`
}

// OutlierStrategy declares outlier detection and handling.
type OutlierStrategy struct {
	DetectionScheme OutlierScheme `json:"detection_scheme"`
	DropOutlier     bool          `json:"drop_outlier"`
}

// CleaningStrategy bundles the cleaning decisions for a dataset.
type CleaningStrategy struct {
	DropDuplicateRows      bool              `json:"drop_duplicate_rows"`
	DropDuplicateColumns   bool              `json:"drop_duplicate_columns"`
	RenameDuplicateColumns bool              `json:"rename_duplicate_columns"`
	NAHandling             NAStrategy        `json:"na_handling_strategy"`
	OutlierHandling        OutlierStrategy   `json:"outlier_handling_strategy"`
	ImbalanceHandling      ImbalanceStrategy `json:"imbalance_handling_strategy"`
}

// PreprocessingStrategy bundles feature-engineering decisions.
type PreprocessingStrategy struct {
	TransformBinaryColumn bool `json:"transform_binary_column"`
	RemoveDatetimeColumn  bool `json:"remove_datetime_column"`
	SplitDatetimeColumn   bool `json:"split_datetime_column"`
}

// TargetStat describes the distribution of a target column. Produced by the
// TargetStatistics extension point once that contract is defined.
type TargetStat struct {
	TargetDistributions string `json:"target_distributions"`
}
