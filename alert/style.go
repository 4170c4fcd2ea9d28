// Package alert builds the view trees of alerts and action sheets: the label,
// content and actions sections of the primary block, the detached cancel
// block of an action sheet, and the drag-to-select gesture wiring shared by
// both.
package alert

import (
	"log/slog"

	"github.com/agiangrant/alertsheet/retained"
)

// Logger receives diagnostics from view construction and gesture handling.
var Logger = slog.Default()

// SetLogger replaces the package logger. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	Logger = l
}

// Kind is the presentation style of an alert.
type Kind int

const (
	KindAlert Kind = iota
	KindActionSheet
)

func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindActionSheet:
		return "actionSheet"
	default:
		return "unknown"
	}
}

// Behaviors is a set of optional interaction capabilities.
type Behaviors uint8

const (
	// BehaviorDragTap lets the user drag across the action rows and release
	// over one to activate it.
	BehaviorDragTap Behaviors = 1 << iota

	// BehaviorTapOutsideToDismiss dismisses the alert when the dimming
	// backdrop is tapped.
	BehaviorTapOutsideToDismiss
)

// Contains reports whether all behaviors in other are set.
func (b Behaviors) Contains(other Behaviors) bool {
	return b&other == other
}

// EdgeInsets are four-sided paddings.
type EdgeInsets struct {
	Top    float32 `toml:"top"`
	Left   float32 `toml:"left"`
	Bottom float32 `toml:"bottom"`
	Right  float32 `toml:"right"`
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float32 {
	return e.Left + e.Right
}

// LabelMetrics positions the title and message labels by their baselines.
type LabelMetrics struct {
	// TitleTopBaseline is the distance from the section top to the title's
	// first baseline.
	TitleTopBaseline float32 `toml:"title_top_baseline"`

	// MessageBaselineGap is the distance from the title's last baseline to
	// the message's first baseline.
	MessageBaselineGap float32 `toml:"message_baseline_gap"`

	// MessageBottomBaseline is the distance from the message's last baseline
	// to the section bottom.
	MessageBottomBaseline float32 `toml:"message_bottom_baseline"`

	// TitleBottomBaseline is the distance from the title's last baseline to
	// the section bottom when there is no message. It is a low-priority
	// preference.
	TitleBottomBaseline float32 `toml:"title_bottom_baseline"`
}

// DefaultLabelMetrics returns the standard baseline offsets.
func DefaultLabelMetrics() LabelMetrics {
	return LabelMetrics{
		TitleTopBaseline:      27,
		MessageBaselineGap:    28,
		MessageBottomBaseline: 28,
		TitleBottomBaseline:   17,
	}
}

// VisualStyle configures the look of one presentation. It is treated as
// immutable once a presentation begins.
type VisualStyle struct {
	Kind Kind

	// Colors are RGBA.
	DimmingColor    uint32
	BackgroundColor uint32

	CornerRadius float32

	// BlurEnable swaps the opaque backgrounds for a blur surface with a
	// vibrancy surface behind the labels.
	BlurEnable bool
	BlurEffect *retained.Effect

	ContentPadding         EdgeInsets
	VerticalElementSpacing float32

	// ActionSheetVerticalSectionSpacing is the gap between the primary block
	// and the cancel block.
	ActionSheetVerticalSectionSpacing float32

	Labels LabelMetrics

	TitleFont     retained.Font
	TitleColor    uint32
	MessageFont   retained.Font
	MessageColor  uint32
	ActionFont    retained.Font
	PreferredFont retained.Font

	// Per-style action text colors.
	NormalTextColor      uint32
	PreferredTextColor   uint32
	DestructiveTextColor uint32

	ActionRowHeight      float32
	ActionHighlightColor uint32

	// Width of an alert; action sheets span the screen minus Margin.
	Width  float32
	Margin float32
}

// DefaultVisualStyle returns the default style for kind.
func DefaultVisualStyle(kind Kind) VisualStyle {
	s := VisualStyle{
		Kind:            kind,
		DimmingColor:    0x00000066,
		BackgroundColor: 0xFFFFFFFF,
		CornerRadius:    13,
		BlurEffect:      retained.BlurEffect("regular"),
		ContentPadding: EdgeInsets{
			Top:    0,
			Left:   16,
			Bottom: 12,
			Right:  16,
		},
		VerticalElementSpacing:            24,
		ActionSheetVerticalSectionSpacing: 8,
		Labels:                            DefaultLabelMetrics(),

		TitleFont:     retained.Font{Size: 13, Weight: retained.WeightSemibold},
		TitleColor:    0x1C1C1EFF,
		MessageFont:   retained.Font{Size: 13},
		MessageColor:  0x1C1C1EFF,
		ActionFont:    retained.Font{Size: 17},
		PreferredFont: retained.Font{Size: 17, Weight: retained.WeightSemibold},

		NormalTextColor:      0x007AFFFF,
		PreferredTextColor:   0x007AFFFF,
		DestructiveTextColor: 0xFF3B30FF,

		ActionRowHeight:      44,
		ActionHighlightColor: 0xD1D1D6FF,

		Width:  270,
		Margin: 10,
	}
	if kind == KindActionSheet {
		s.ActionRowHeight = 57
		s.VerticalElementSpacing = 16
		s.ActionFont = retained.Font{Size: 20}
		s.PreferredFont = retained.Font{Size: 20, Weight: retained.WeightSemibold}
	}
	return s
}

// textColor returns the row text color for an action style.
func (s *VisualStyle) textColor(style ActionStyle) uint32 {
	switch style {
	case ActionPreferred:
		return s.PreferredTextColor
	case ActionDestructive:
		return s.DestructiveTextColor
	default:
		return s.NormalTextColor
	}
}

func (s *VisualStyle) font(style ActionStyle) retained.Font {
	if style == ActionPreferred {
		return s.PreferredFont
	}
	return s.ActionFont
}
