package repository

import "context"

// SourceDatasetSummary is one row of the post-migration integrity report.
type SourceDatasetSummary struct {
	SourceDataset string
	Links         int64
	Cocktails     int64
	Ingredients   int64
}

// SummarizeBySourceDataset reports, per provenance tag, how many links exist
// and how many distinct cocktails and ingredients they touch.
func (r *Repository) SummarizeBySourceDataset(ctx context.Context) ([]SourceDatasetSummary, error) {
	var summaries []SourceDatasetSummary

	result := r.DB.WithContext(ctx).Table("cocktail_ingredients").
		Select("source_dataset, " +
			"count(*) as links, " +
			"count(distinct cocktail_id) as cocktails, " +
			"count(distinct ingredient_id) as ingredients").
		Where("deleted_at is null").
		Group("source_dataset").
		Order("source_dataset").
		Scan(&summaries)

	if result.Error != nil {
		return nil, result.Error
	}

	return summaries, nil
}
