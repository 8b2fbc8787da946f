package mapgen

import (
	"fmt"
	"math/rand"
	"tactics-core/internal/domain"
)

// Ограничения генерации
const (
	MaxSide          = 256
	DefaultSmoothing = 2
)

// Config - параметры случайной карты
type Config struct {
	Width, Height int
	Weights       []domain.TerrainWeight
	// Smoothing - сколько проходов клеточного сглаживания сделать после заливки
	Smoothing int
}

// Generate создает местность карты: случайная заливка по весам + сглаживание.
// Результат полностью определяется состоянием rng, поэтому карту можно воспроизвести по сиду.
func Generate(cfg Config, rng *rand.Rand) ([]domain.TerrainType, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxSide || cfg.Height > MaxSide {
		return nil, domain.ConfigErrorf("map size %dx%d out of range 1..%d", cfg.Width, cfg.Height, MaxSide)
	}

	total := 0
	for _, w := range cfg.Weights {
		if w.Weight < 0 {
			return nil, domain.ConfigErrorf("negative weight for terrain %q", w.Terrain.Name)
		}
		total += w.Weight
	}
	if total == 0 {
		return nil, domain.ConfigErrorf("generator has no terrain weights")
	}

	terrain := make([]domain.TerrainType, cfg.Width*cfg.Height)
	for i := range terrain {
		terrain[i] = pick(cfg.Weights, total, rng)
	}

	for i := 0; i < cfg.Smoothing; i++ {
		terrain = smooth(terrain, cfg.Width, cfg.Height)
	}
	return terrain, nil
}

func pick(weights []domain.TerrainWeight, total int, rng *rand.Rand) domain.TerrainType {
	roll := rng.Intn(total)
	for _, w := range weights {
		if roll < w.Weight {
			return w.Terrain
		}
		roll -= w.Weight
	}
	// Сюда не попадаем: roll < total
	panic(fmt.Sprintf("mapgen: roll %d out of total %d", roll, total))
}

// smooth - один проход клеточного автомата: тайл принимает местность,
// которой больше всего среди него и 8 соседей. При равенстве остается своя.
func smooth(src []domain.TerrainType, width, height int) []domain.TerrainType {
	dst := make([]domain.TerrainType, len(src))
	counts := make(map[domain.TerrainType]int, 8)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			clear(counts)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					counts[src[ny*width+nx]]++
				}
			}

			own := src[y*width+x]
			best, bestCount := own, counts[own]
			// Обходим соседей в фиксированном порядке, а не мапу: результат детерминирован
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					t := src[ny*width+nx]
					if counts[t] > bestCount {
						best, bestCount = t, counts[t]
					}
				}
			}
			dst[y*width+x] = best
		}
	}
	return dst
}
