package repository

import "github.com/odinmillion/dubai-mortgage-calculator/domain"

type MortgageRepository interface {
	Save(input domain.MortgageInput, result domain.MortgageResult) error
	List(limit int) ([]domain.CalculationRecord, error)
}
