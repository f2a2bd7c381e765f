package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is the on-disk prefab layout: a name plus one raw yaml
// node per component key.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ProjectionComponentSpec struct {
	Scale         float64 `yaml:"scale"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// PanCamComponentSpec mirrors component.PanCamConfig. Omitted fields keep
// their defaults.
type PanCamComponentSpec struct {
	GrabButtons            []string `yaml:"grab_buttons"`
	Enabled                *bool    `yaml:"enabled"`
	ZoomToCursor           *bool    `yaml:"zoom_to_cursor"`
	MinScale               *float64 `yaml:"min_scale"`
	MaxScale               *float64 `yaml:"max_scale"`
	MinX                   *float64 `yaml:"min_x"`
	MaxX                   *float64 `yaml:"max_x"`
	MinY                   *float64 `yaml:"min_y"`
	MaxY                   *float64 `yaml:"max_y"`
	PixelsPerLine          *float64 `yaml:"pixels_per_line"`
	BaseZoomMultiplier     *float64 `yaml:"base_zoom_multiplier"`
	ShiftMultiplierNormal  *float64 `yaml:"shift_multiplier_normal"`
	ShiftMultiplierShifted *float64 `yaml:"shift_multiplier_shifted"`
	AnimationScale         *float64 `yaml:"animation_scale"`
	ZoomEpsilon            *float64 `yaml:"zoom_epsilon"`
	TranslationEpsilon     *float64 `yaml:"translation_epsilon"`
}

type PanCamStateComponentSpec struct {
	CurrentZoom float64 `yaml:"current_zoom"`
	TargetZoom  float64 `yaml:"target_zoom"`
}

type ViewportComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type FocusComponentSpec struct {
	Script string `yaml:"script"`
}
