package favorites

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders the snapshot as YAML with the same field names as the
// JSON form.
func EncodeYAML(s Snapshot) ([]byte, error) {
	if s.Items == nil {
		s.Items = []FavoriteItem{}
	}
	if s.Groups == nil {
		s.Groups = []FavoriteGroup{}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode favorites yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML snapshot. Unlike Decode it is strict: any error
// rejects the whole document.
func DecodeYAML(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse favorites yaml: %w", err)
	}
	if snap.Items == nil {
		snap.Items = []FavoriteItem{}
	}
	if snap.Groups == nil {
		snap.Groups = []FavoriteGroup{}
	}
	return snap, nil
}
