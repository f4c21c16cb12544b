package domain

// DailyAggregate soma os snapshots autoritativos de um dia
type DailyAggregate struct {
	Day              string  `json:"date"`
	TotalSpend       float64 `json:"spend"`
	TotalClicks      int64   `json:"clicks"`
	TotalImpressions int64   `json:"impressions"`
	AvgCPC           float64 `json:"cpc"`
	AvgCTR           float64 `json:"ctr"`
	CompanyCount     int     `json:"company_count"`
}

// CompanyAggregate soma os snapshots autoritativos de uma empresa no período
type CompanyAggregate struct {
	Company          string  `json:"company"`
	TotalSpend       float64 `json:"spend"`
	TotalClicks      int64   `json:"clicks"`
	TotalImpressions int64   `json:"impressions"`
	AvgCPC           float64 `json:"cpc"`
	AvgCTR           float64 `json:"ctr"`
	DaysWithData     int     `json:"days_with_data"`
	Platform         string  `json:"platform"`
}
