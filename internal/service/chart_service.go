package service

import (
	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/pkg/logger"
	"ai-chartgen-be/internal/repository/memory"
)

type IChartService interface {
	GetChart(chartID string) (*dto.GetChartResponse, bool)
	UpdateChart(chartID string, req *dto.UpdateChartRequest) bool
}

type chartService struct {
	charts *memory.ChartRepository
	logger logger.ILogger
}

func NewChartService(charts *memory.ChartRepository, log logger.ILogger) IChartService {
	return &chartService{
		charts: charts,
		logger: log,
	}
}

func (s *chartService) GetChart(chartID string) (*dto.GetChartResponse, bool) {
	chart, found := s.charts.Get(chartID)
	if !found {
		return nil, false
	}
	return &dto.GetChartResponse{
		Id:        chart.Id,
		Payload:   chart.Payload,
		SessionId: chart.SessionId,
		CreatedAt: chart.CreatedAt,
		UpdatedAt: chart.UpdatedAt,
	}, true
}

// UpdateChart replaces the stored payload in full.
func (s *chartService) UpdateChart(chartID string, req *dto.UpdateChartRequest) bool {
	updated := s.charts.Update(chartID, req.Payload)
	if updated {
		s.logger.Info("chart", "Chart payload replaced", map[string]interface{}{
			"chart_id": chartID,
		})
	}
	return updated
}
