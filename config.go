package alertsheet

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/alertsheet/alert"
)

// StyleFile is the TOML representation of a visual style. Every field is
// optional; missing fields keep the defaults of the style's kind.
type StyleFile struct {
	Kind string `toml:"kind"`

	Colors ColorsConfig `toml:"colors"`

	CornerRadius *float32 `toml:"corner_radius"`

	Blur BlurConfig `toml:"blur"`

	ContentPadding         *alert.EdgeInsets `toml:"content_padding"`
	VerticalElementSpacing *float32          `toml:"vertical_element_spacing"`
	SectionSpacing         *float32          `toml:"action_sheet_section_spacing"`

	Labels *alert.LabelMetrics `toml:"labels"`

	Fonts FontsConfig `toml:"fonts"`

	ActionRowHeight *float32 `toml:"action_row_height"`
	Width           *float32 `toml:"width"`
	Margin          *float32 `toml:"margin"`
}

// ColorsConfig holds colors as "#rrggbb" or "#rrggbbaa".
type ColorsConfig struct {
	Dimming     string `toml:"dimming"`
	Background  string `toml:"background"`
	Title       string `toml:"title"`
	Message     string `toml:"message"`
	Normal      string `toml:"normal"`
	Preferred   string `toml:"preferred"`
	Destructive string `toml:"destructive"`
	Highlight   string `toml:"highlight"`
	BlurTint    string `toml:"blur_tint"`
}

// BlurConfig enables the blurred background.
type BlurConfig struct {
	Enable *bool  `toml:"enable"`
	Style  string `toml:"style"`
}

// FontsConfig holds font sizes in points.
type FontsConfig struct {
	Title   *float32 `toml:"title"`
	Message *float32 `toml:"message"`
	Action  *float32 `toml:"action"`
}

// LoadVisualStyle reads a visual style from a TOML file.
func LoadVisualStyle(path string) (alert.VisualStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return alert.VisualStyle{}, fmt.Errorf("failed to read style file: %w", err)
	}
	style, err := ParseVisualStyle(data)
	if err != nil {
		return alert.VisualStyle{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return style, nil
}

// ParseVisualStyle decodes a TOML visual style over the defaults of its kind.
func ParseVisualStyle(data []byte) (alert.VisualStyle, error) {
	// Tables decode over the defaults so partial tables keep the rest.
	defaults := alert.DefaultVisualStyle(alert.KindAlert)
	file := StyleFile{
		ContentPadding: &defaults.ContentPadding,
		Labels:         &defaults.Labels,
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return alert.VisualStyle{}, err
	}

	kind, err := parseKind(file.Kind)
	if err != nil {
		return alert.VisualStyle{}, err
	}
	style := alert.DefaultVisualStyle(kind)

	colors := []struct {
		value string
		dst   *uint32
	}{
		{file.Colors.Dimming, &style.DimmingColor},
		{file.Colors.Background, &style.BackgroundColor},
		{file.Colors.Title, &style.TitleColor},
		{file.Colors.Message, &style.MessageColor},
		{file.Colors.Normal, &style.NormalTextColor},
		{file.Colors.Preferred, &style.PreferredTextColor},
		{file.Colors.Destructive, &style.DestructiveTextColor},
		{file.Colors.Highlight, &style.ActionHighlightColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if *c.dst, err = ParseColor(c.value); err != nil {
			return alert.VisualStyle{}, err
		}
	}

	setFloat(&style.CornerRadius, file.CornerRadius)
	setFloat(&style.VerticalElementSpacing, file.VerticalElementSpacing)
	setFloat(&style.ActionSheetVerticalSectionSpacing, file.SectionSpacing)
	setFloat(&style.ActionRowHeight, file.ActionRowHeight)
	setFloat(&style.Width, file.Width)
	setFloat(&style.Margin, file.Margin)
	setFloat(&style.TitleFont.Size, file.Fonts.Title)
	setFloat(&style.MessageFont.Size, file.Fonts.Message)
	if file.Fonts.Action != nil {
		style.ActionFont.Size = *file.Fonts.Action
		style.PreferredFont.Size = *file.Fonts.Action
	}
	style.ContentPadding = *file.ContentPadding
	style.Labels = *file.Labels

	if file.Blur.Enable != nil {
		style.BlurEnable = *file.Blur.Enable
	}
	if file.Blur.Style != "" || file.Colors.BlurTint != "" {
		effect := *style.BlurEffect
		if file.Blur.Style != "" {
			effect.Style = file.Blur.Style
		}
		if file.Colors.BlurTint != "" {
			if effect.Tint, err = ParseColor(file.Colors.BlurTint); err != nil {
				return alert.VisualStyle{}, err
			}
		}
		style.BlurEffect = &effect
	}
	return style, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into RGBA.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	alpha := uint32(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint32(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | alpha, nil
}

func parseKind(s string) (alert.Kind, error) {
	switch strings.ToLower(s) {
	case "", "alert":
		return alert.KindAlert, nil
	case "action_sheet", "actionsheet", "sheet":
		return alert.KindActionSheet, nil
	default:
		return 0, fmt.Errorf("unknown alert kind %q", s)
	}
}

func setFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}
