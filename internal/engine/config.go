package engine

import (
	"runtime"
	"tactics-core/internal/domain"
	"time"

	"github.com/google/uuid"
)

// Config хранит параметры запуска партии
type Config struct {
	// Seed - мастер-зерно. От него зависят все случайные карты партии.
	Seed   int64
	GameID uuid.UUID

	Players []domain.Player

	// Workers - сколько горутин планировщик может занять расчетом ходов
	Workers int
	// HubBuffer - размер канала каждого подписчика на события
	HubBuffer int
}

// NewConfig создает конфиг по умолчанию (случайный сид, два игрока)
func NewConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		GameID: uuid.New(),
		Players: []domain.Player{
			{ID: 1, Name: "Blue"},
			{ID: 2, Name: "Red"},
		},
		Workers:   runtime.NumCPU(),
		HubBuffer: 256,
	}
}
