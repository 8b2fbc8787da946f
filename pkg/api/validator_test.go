package api

import (
	"tactics-core/pkg/mapgen"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload Validator
		wantErr bool
	}{
		{"spawn ok", SpawnPayload{Template: "rifleman"}, false},
		{"spawn without template", SpawnPayload{}, true},
		{"move ok", MovePayload{ObjectID: 1}, false},
		{"move without object", MovePayload{To: Position{X: 1}}, true},
		{"despawn without object", DespawnPayload{}, true},
		{"attack ok", AttackPayload{AttackerID: 1, TargetID: 2}, false},
		{"attack self", AttackPayload{AttackerID: 1, TargetID: 1}, true},
		{"attack without target", AttackPayload{AttackerID: 1}, true},
		{"layout map", MapPayload{Layout: "river"}, false},
		{"generated map", MapPayload{Width: 10, Height: 10}, false},
		{"empty map", MapPayload{}, true},
		{"largest map", MapPayload{Width: mapgen.MaxSide, Height: mapgen.MaxSide}, false},
		{"huge map", MapPayload{Width: mapgen.MaxSide + 1, Height: 1}, true},
		{"despawn map without id", DespawnMapPayload{}, true},
		{"history ok", HistoryPayload{Count: 3}, false},
		{"history zero", HistoryPayload{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
