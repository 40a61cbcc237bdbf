// Package settings holds the run's key/value configuration: a settings
// store the operator edits between runs, and a durable properties file the
// promoted API credential lives in. Both are resolved once per run.
package settings

import "log/slog"

// Boolean setting literals. Anything else is invalid and treated as unknown.
const (
	Yes = "Yes"
	No  = "No"
)

// Store is the run settings store.
type Store interface {
	GetSetting(name string) (string, bool)
	SetSetting(name, value string) error
}

// GetBoolSetting maps the literals Yes/No to true/false. Any other stored
// value is logged as invalid and reported as absent.
func GetBoolSetting(store Store, name string) (bool, bool) {
	value, ok := store.GetSetting(name)
	if !ok {
		return false, false
	}
	switch value {
	case Yes:
		return true, true
	case No:
		return false, true
	}
	slog.Warn("setting value is not Yes or No", "setting", name, "value", value)
	return false, false
}

// RunSource adapts a Store and a Properties file to the workflow's settings
// snapshot interface.
type RunSource struct {
	Store Store
	Props Properties
}

func (r RunSource) Setting(name string) (string, bool) {
	return r.Store.GetSetting(name)
}

func (r RunSource) Property(name string) (string, bool) {
	return r.Props.Get(name)
}
