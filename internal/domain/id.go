package domain

import (
	"fmt"
	"strconv"
)

// ObjectID - идентификатор объекта на поле. Уникален в пределах одной партии.
type ObjectID uint64

// NilObjectID - "нет объекта"
const NilObjectID ObjectID = 0

// MapID - идентификатор карты в пределах партии
type MapID uint32

// PlayerID - номер игрока. 0 означает "ничей" объект (мосты, нейтралы).
type PlayerID uint8

const NoPlayer PlayerID = 0

func (id ObjectID) IsNil() bool {
	return id == NilObjectID
}

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших uint64
func (id ObjectID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает и строку, и число
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid object id %q: %w", string(data), err)
	}
	*id = ObjectID(val)
	return nil
}

func (id ObjectID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return "obj#" + strconv.FormatUint(uint64(id), 10)
}

func (id MapID) String() string {
	return "map#" + strconv.FormatUint(uint64(id), 10)
}

// IDProvider выдает монотонно растущие идентификаторы.
// Выданный ID больше никогда не переиспользуется, даже если команду откатили:
// команда резервирует ID при создании и повторяет его при rollforward.
type IDProvider struct {
	last uint64
}

// NewIDProvider создает провайдер, первый ID которого будет start+1
func NewIDProvider(start uint64) *IDProvider {
	return &IDProvider{last: start}
}

func (p *IDProvider) Next() uint64 {
	p.last++
	return p.last
}

// Last возвращает последний выданный ID (0, если ничего не выдавали)
func (p *IDProvider) Last() uint64 {
	return p.last
}
