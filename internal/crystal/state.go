package crystal

import (
	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// DecodeState reads a persisted crystal.state document leniently.
// Missing or mistyped fields are left empty for Restore to default.
func DecodeState(raw []byte) (domain.CrystalState, bool) {
	state := domain.CrystalState{Tiers: map[string]int{}}
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return state, false
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return state, false
	}

	if r := doc.Get("rank"); r.Type == gjson.String {
		state.Rank = r.Str
	}
	if r := doc.Get("refine"); r.Type == gjson.String {
		state.Refine = r.Str
	}
	doc.Get("tiers").ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.Number {
			state.Tiers[k.String()] = int(v.Int())
		}
		return true
	})
	return state, true
}
