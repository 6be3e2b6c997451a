// Package settings persists the viewer's last-used parameters across
// runs via a gdata store. A nil store degrades to in-memory defaults.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"lumicube-renderer/internal/scene"
)

const (
	settingsObject = "viewer"
	paramsProperty = "params"
)

// Manager loads and saves the live parameter set.
type Manager struct {
	store  *gdata.Manager
	params scene.Params
}

// NewManager restores saved parameters, falling back to defaults when
// the store is nil, empty or unreadable. Load failure is not fatal.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:  store,
		params: scene.DefaultParams(),
	}
	if err := m.load(); err != nil {
		log.Printf("settings: load failed: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) load() error {
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, paramsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, paramsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	var p scene.Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	p.Clamp()
	m.params = p
	return nil
}

// Save writes the given parameters to the store. With a nil store it
// keeps them in memory only and reports no error.
func (m *Manager) Save(p scene.Params) error {
	m.params = p
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, paramsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Params returns the current parameter set.
func (m *Manager) Params() scene.Params {
	return m.params
}
