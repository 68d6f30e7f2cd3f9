package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// StateKey is the fixed key the whole aggregate is stored under.
const StateKey = "lifeboard:state"

// SaveState serializes the aggregate and writes it to the kv store. Write
// errors propagate to the caller; there is no retry.
func SaveState(ctx context.Context, kv *KV, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return kv.Set(ctx, StateKey, data)
}

// LoadState reads the persisted aggregate. A missing key yields
// (nil, nil); callers fall back to DefaultState.
func LoadState(ctx context.Context, kv *KV) (*State, error) {
	data, err := kv.Get(ctx, StateKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	if st.Profile.SkillXP == nil {
		st.Profile.SkillXP = map[string]int{}
	}
	return &st, nil
}
