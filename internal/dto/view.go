package dto

import (
	"strconv"

	"famtree/internal/domain"
)

// AverageAgeNA is shown in place of an average age when no member has a
// birth date.
const AverageAgeNA = "N/A"

type StatisticsResponse struct {
	domain.Statistics
	AverageAgeLabel string `json:"average_age_label"`
}

func NewStatisticsResponse(st domain.Statistics) StatisticsResponse {
	label := AverageAgeNA
	if st.AverageAge != nil {
		label = strconv.FormatFloat(*st.AverageAge, 'f', 1, 64)
	}
	return StatisticsResponse{Statistics: st, AverageAgeLabel: label}
}
