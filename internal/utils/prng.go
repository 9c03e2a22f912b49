// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// позволяющая подставить предсказуемый (seeded) рандом в поле шаров и в тесты.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерно распределенное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
