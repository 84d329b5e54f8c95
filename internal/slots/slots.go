// Package slots flattens intent slots into descriptors.
package slots

import (
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"sort"
)

// NestedSlotID is the Descriptor.ID of entries built from a nested slotValue.
const NestedSlotID = "SLOT_VALUE"

// Descriptor is a flattened slot. For flat slots ID is the slot key and
// EntityID is empty. For nested slots ID is NestedSlotID, EntityID and Name
// come from the first resolution candidate.
type Descriptor struct {
	ID       string `json:"id"`
	EntityID string `json:"entityId,omitempty"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Type     string `json:"type"`
}

// Extract returns one descriptor per resolvable slot, ordered by slot key.
// A slot with a nested slotValue that has no second level with resolutions
// is skipped. Whether such slots should fall back to their flat value is an
// open question on the upstream schema; until it is settled they stay out.
func Extract(intent *models.Intent) []Descriptor {
	if intent == nil || len(intent.Slots) == 0 {
		return nil
	}

	keys := make([]string, 0, len(intent.Slots))
	for k := range intent.Slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Descriptor, 0, len(keys))
	for _, k := range keys {
		slot := intent.Slots[k]
		if slot.SlotValue == nil {
			out = append(out, Descriptor{
				ID:    k,
				Name:  slot.Name,
				Value: slot.Value,
				Type:  slot.Name,
			})
			continue
		}
		if d, ok := nested(slot.SlotValue); ok {
			out = append(out, d)
		}
	}
	return out
}

// nested resolves outer -> outer.SlotValue -> resolutions. Deeper levels are
// never looked at.
func nested(outer *models.Slot) (Descriptor, bool) {
	inner := outer.SlotValue
	if inner == nil {
		return Descriptor{}, false
	}
	entity, ok := firstCandidate(inner.Resolutions)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		ID:       NestedSlotID,
		EntityID: entity.ID,
		Name:     entity.Name,
		Value:    inner.Value,
		Type:     outer.Name,
	}, true
}

// firstCandidate returns the first candidate of the first authority; the
// other authorities are alternates.
func firstCandidate(r *models.Resolutions) (models.ResolvedEntity, bool) {
	if r == nil || len(r.PerAuthority) == 0 || len(r.PerAuthority[0].Values) == 0 {
		return models.ResolvedEntity{}, false
	}
	return r.PerAuthority[0].Values[0].Value, true
}
