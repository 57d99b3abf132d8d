package repository

import "finance-guide/domain"

type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	Recent(limit int) []domain.CalculationRecord
}
