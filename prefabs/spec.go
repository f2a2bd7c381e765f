package prefabs

import (
	"fmt"

	"github.com/milk9111/pancam/ecs/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CameraSpec is the typed view of a camera prefab.
type CameraSpec struct {
	Name       string
	Transform  TransformComponentSpec
	Projection ProjectionComponentSpec
	PanCam     PanCamComponentSpec
	State      PanCamStateComponentSpec
}

func LoadCameraSpec(filename string) (CameraSpec, error) {
	build, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return CameraSpec{}, err
	}
	spec, err := CameraSpecFromBuild(build)
	if err != nil {
		return CameraSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// ParseCameraSpec decodes a camera prefab from raw yaml.
func ParseCameraSpec(data []byte) (CameraSpec, error) {
	var build EntityBuildSpec
	if err := yaml.Unmarshal(data, &build); err != nil {
		return CameraSpec{}, fmt.Errorf("prefabs: unmarshal camera: %w", err)
	}
	return CameraSpecFromBuild(build)
}

func CameraSpecFromBuild(build EntityBuildSpec) (CameraSpec, error) {
	spec := CameraSpec{Name: build.Name}
	var err error
	if spec.Transform, err = DecodeComponentSpec[TransformComponentSpec](build.Components["transform"]); err != nil {
		return CameraSpec{}, fmt.Errorf("decode transform: %w", err)
	}
	if spec.Projection, err = DecodeComponentSpec[ProjectionComponentSpec](build.Components["orthographic_projection"]); err != nil {
		return CameraSpec{}, fmt.Errorf("decode orthographic_projection: %w", err)
	}
	if spec.PanCam, err = DecodeComponentSpec[PanCamComponentSpec](build.Components["pancam"]); err != nil {
		return CameraSpec{}, fmt.Errorf("decode pancam: %w", err)
	}
	if spec.State, err = DecodeComponentSpec[PanCamStateComponentSpec](build.Components["pancam_state"]); err != nil {
		return CameraSpec{}, fmt.Errorf("decode pancam_state: %w", err)
	}
	return spec, nil
}

func (s CameraSpec) PanCamConfig() (component.PanCamConfig, error) {
	return s.PanCam.PanCamConfig()
}

// PanCamConfig applies the set fields over component.DefaultPanCamConfig and
// validates the result.
func (s PanCamComponentSpec) PanCamConfig() (component.PanCamConfig, error) {
	cfg := component.DefaultPanCamConfig()
	if s.GrabButtons != nil {
		buttons := make([]component.MouseButton, 0, len(s.GrabButtons))
		for _, name := range s.GrabButtons {
			b, err := component.ParseMouseButton(name)
			if err != nil {
				return component.PanCamConfig{}, fmt.Errorf("%w: grab_buttons: %w", component.ErrInvalidPanCamConfig, err)
			}
			buttons = append(buttons, b)
		}
		cfg.GrabButtons = component.NewMouseButtons(buttons...)
	}
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.ZoomToCursor != nil {
		cfg.ZoomToCursor = *s.ZoomToCursor
	}

	setFloat(&cfg.MinScale, s.MinScale)
	setFloat(&cfg.PixelsPerLine, s.PixelsPerLine)
	setFloat(&cfg.BaseZoomMultiplier, s.BaseZoomMultiplier)
	setFloat(&cfg.ShiftMultiplierNormal, s.ShiftMultiplierNormal)
	setFloat(&cfg.ShiftMultiplierShifted, s.ShiftMultiplierShifted)
	setFloat(&cfg.AnimationScale, s.AnimationScale)
	setFloat(&cfg.ZoomEpsilon, s.ZoomEpsilon)
	setFloat(&cfg.TranslationEpsilon, s.TranslationEpsilon)

	cfg.MaxScale = copyFloat(s.MaxScale)
	cfg.MinX = copyFloat(s.MinX)
	cfg.MaxX = copyFloat(s.MaxX)
	cfg.MinY = copyFloat(s.MinY)
	cfg.MaxY = copyFloat(s.MaxY)

	if err := cfg.Validate(); err != nil {
		return component.PanCamConfig{}, err
	}
	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// InputSpec configures the input singleton and the initial window size.
type InputSpec struct {
	Name     string
	Viewport ViewportComponentSpec
	Focus    FocusComponentSpec
}

func LoadInputSpec(filename string) (InputSpec, error) {
	build, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return InputSpec{}, err
	}
	spec := InputSpec{Name: build.Name}
	if spec.Viewport, err = DecodeComponentSpec[ViewportComponentSpec](build.Components["viewport"]); err != nil {
		return InputSpec{}, fmt.Errorf("prefabs: %s: decode viewport: %w", filename, err)
	}
	if spec.Focus, err = DecodeComponentSpec[FocusComponentSpec](build.Components["focus"]); err != nil {
		return InputSpec{}, fmt.Errorf("prefabs: %s: decode focus: %w", filename, err)
	}
	return spec, nil
}
