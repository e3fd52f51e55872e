package gui

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // Default item spacing
	SpaceMD   float32 = 8 // Default padding
	SpaceLG   float32 = 12
)

// Style defines the visual appearance of UI elements.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32 // 0 = use TextColor

	// Checkbox box colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	CheckMarkColor     uint32

	// Selection colors
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	// List frame
	InputBgColor     uint32
	InputBorderColor uint32

	SeparatorColor uint32

	// Slider colors
	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	// Sizing
	FontScale    float32
	ItemSpacing  float32
	PanelPadding float32
	InputPadding float32
	BorderSize   float32
}

// DefaultStyle returns the dark overlay style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 25, 220),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 60, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		CheckMarkColor:     RGBA(90, 150, 230, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:     RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		FontScale:    1.0,
		ItemSpacing:  SpaceSM,
		PanelPadding: SpaceMD,
		InputPadding: SpaceSM,
		BorderSize:   1,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)
	s.InputBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.SliderTrackColor = RGBA(220, 220, 220, 255)
	s.SliderFillColor = RGBA(0, 120, 215, 255)
	s.SliderGrabColor = RGBA(180, 180, 180, 255)
	return s
}
