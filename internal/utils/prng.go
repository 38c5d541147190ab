// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// Один экземпляр живёт весь процесс и переживает рестарты партии.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newPRNGService(seed)
}

// NewPRNGServiceFromSeed берёт сид из конфига: nil означает текущее время,
// любое другое значение (включая 0) используется как есть.
func NewPRNGServiceFromSeed(seed *int64) *PRNGService {
	if seed == nil {
		return NewPRNGService(0)
	}
	return newPRNGService(*seed)
}

func newPRNGService(seed int64) *PRNGService {
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан генератор.
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

// IntRange возвращает случайное целое число в диапазоне [min, max].
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Choose выбирает случайный элемент из непустого набора индексов.
func (s *PRNGService) Choose(options []int) (int, bool) {
	if len(options) == 0 {
		return 0, false
	}
	return options[s.rng.Intn(len(options))], true
}
