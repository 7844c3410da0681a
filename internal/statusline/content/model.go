package content

import (
	"context"

	appconfig "github.com/young1lin/claude-statusline/internal/config"
	"github.com/young1lin/claude-statusline/internal/statusline/widget"
)

type modelValue struct {
	Name   string `json:"name"`
	Window int    `json:"window"`
}

// ModelCollector collects the model display name and its context window
type ModelCollector struct {
	*BaseCollector
}

// NewModelCollector creates a new model collector
func NewModelCollector() *ModelCollector {
	return &ModelCollector{
		BaseCollector: NewBaseCollector("model", 0, false),
	}
}

// Collect returns the model reported on stdin
func (c *ModelCollector) Collect(_ context.Context, in *StatusLineInput) (string, error) {
	v := modelValue{Name: in.Model.DisplayName}
	if in.Model.ID != "" {
		if v.Name == "" {
			v.Name = appconfig.GetModelName(in.Model.ID)
		}
		v.Window = appconfig.GetContextWindow(in.Model.ID)
	}
	if in.ContextWindow.ContextWindowSize > 0 {
		v.Window = in.ContextWindow.ContextWindowSize
	}
	return encode(v)
}

// Apply sets the model fields of wctx
func (c *ModelCollector) Apply(value string, wctx *widget.Context) error {
	var v modelValue
	if err := decode(value, &v); err != nil {
		return err
	}
	wctx.Model = v.Name
	if v.Window > 0 {
		wctx.ContextWindow = v.Window
	}
	return nil
}

// VersionCollector collects the host CLI version
type VersionCollector struct {
	*BaseCollector
}

// NewVersionCollector creates a new version collector
func NewVersionCollector() *VersionCollector {
	return &VersionCollector{
		BaseCollector: NewBaseCollector("version", 0, true),
	}
}

// Collect returns the version reported on stdin
func (c *VersionCollector) Collect(_ context.Context, in *StatusLineInput) (string, error) {
	return in.Version, nil
}

// Apply sets wctx.Version
func (c *VersionCollector) Apply(value string, wctx *widget.Context) error {
	wctx.Version = value
	return nil
}
