package alert

import (
	"fmt"

	"github.com/agiangrant/alertsheet/retained"
)

// ActionSheetPrimaryView is the main block of an action sheet, and the only
// block of an alert: a vertical stack of the label section, the caller's
// content section and the actions section on a background surface.
type ActionSheetPrimaryView struct {
	root         *retained.Widget
	titleLabel   *retained.Widget
	messageLabel *retained.Widget
	actionsView  *ActionsView

	title   string
	message string

	background      Surface
	labelBackground Surface
	stack           *retained.Widget
	contentSection  *retained.Widget

	titleBottom *retained.Constraint
	built       bool
}

// NewActionSheetPrimaryView creates an unbuilt primary view.
func NewActionSheetPrimaryView() *ActionSheetPrimaryView {
	return &ActionSheetPrimaryView{
		root:         retained.Container(),
		titleLabel:   retained.NewWidget(retained.KindLabel),
		messageLabel: retained.NewWidget(retained.KindLabel),
		actionsView:  NewActionsView(),
	}
}

// Root returns the view's root widget.
func (v *ActionSheetPrimaryView) Root() *retained.Widget { return v.root }

// SetTitle sets the title text. An empty title counts as absent.
func (v *ActionSheetPrimaryView) SetTitle(title string) {
	v.title = title
	v.titleLabel.SetText(title)
}

// Title returns the title text.
func (v *ActionSheetPrimaryView) Title() string { return v.title }

// SetMessage sets the message text. An empty message counts as absent.
func (v *ActionSheetPrimaryView) SetMessage(message string) {
	v.message = message
	v.messageLabel.SetText(message)
}

// Message returns the message text.
func (v *ActionSheetPrimaryView) Message() string { return v.message }

// SetActionTapped sets the callback for tapped action rows.
func (v *ActionSheetPrimaryView) SetActionTapped(fn func(*Action)) {
	v.actionsView.SetActionTapped(fn)
}

// SetArmedCell connects the actions section to a shared armed-action cell.
func (v *ActionSheetPrimaryView) SetArmedCell(cell *ArmedCell) {
	v.actionsView.SetArmedCell(cell)
}

// HighlightAction is the pan-gesture target for drag-to-select.
func (v *ActionSheetPrimaryView) HighlightAction(g *retained.PanGestureRecognizer) {
	v.actionsView.HighlightAction(g)
}

// Background returns the background surface, or nil before BuildView.
func (v *ActionSheetPrimaryView) Background() Surface { return v.background }

// LabelBackground returns the label section's surface, or nil before BuildView.
func (v *ActionSheetPrimaryView) LabelBackground() Surface { return v.labelBackground }

// LabelSection returns the label section widget, or nil before BuildView.
func (v *ActionSheetPrimaryView) LabelSection() *retained.Widget {
	if v.labelBackground == nil {
		return nil
	}
	return v.labelBackground.Widget()
}

// ContentSection returns the container wrapping the caller's content view.
func (v *ActionSheetPrimaryView) ContentSection() *retained.Widget { return v.contentSection }

// Sections returns the label, content and actions section widgets in stack
// order, or nil before BuildView.
func (v *ActionSheetPrimaryView) Sections() []*retained.Widget {
	if v.labelBackground == nil {
		return nil
	}
	return []*retained.Widget{v.labelBackground.Widget(), v.contentSection, v.actionsView.Widget()}
}

// ActionsView returns the actions section.
func (v *ActionSheetPrimaryView) ActionsView() *ActionsView { return v.actionsView }

// TitleLabel returns the title label widget.
func (v *ActionSheetPrimaryView) TitleLabel() *retained.Widget { return v.titleLabel }

// MessageLabel returns the message label widget. It is only part of the
// tree when the message is non-empty.
func (v *ActionSheetPrimaryView) MessageLabel() *retained.Widget { return v.messageLabel }

// TitleBottomConstraint returns the low-priority constraint pinning the
// title's last baseline to the section bottom.
func (v *ActionSheetPrimaryView) TitleBottomConstraint() *retained.Constraint { return v.titleBottom }

// BuildView assembles the view tree. It may be called once.
func (v *ActionSheetPrimaryView) BuildView(actions []*Action, content *retained.Widget, style VisualStyle) error {
	if content == nil {
		panic("alert: BuildView requires a content view")
	}
	if v.built {
		return fmt.Errorf("primary view: %w", ErrAlreadyBuilt)
	}
	v.built = true

	// Base color under either surface variant.
	v.root.SetBackgroundColor(style.BackgroundColor)
	v.background, v.labelBackground = newSurfaces(style)
	v.root.AddChild(v.background.Widget())

	v.contentSection = retained.Container()
	v.stack = v.buildStack(v.background.Content(), v.Sections()...)
	v.buildLabels(v.labelBackground.Content(), style)
	v.buildContent(content, style)
	v.buildActions(actions, style)

	padding := style.ContentPadding.Horizontal()
	bg := v.background.Widget()
	retained.Activate(
		v.titleLabel.WidthAnchor().ConstraintEqualTo(v.stack.WidthAnchor(), -padding),
	)
	retained.Activate(retained.PinEdges(bg, v.root)...)
	return nil
}

func (v *ActionSheetPrimaryView) buildStack(parent *retained.Widget, views ...*retained.Widget) *retained.Widget {
	stack := retained.VStack(views...).SetAlignment(retained.AlignCenter)
	parent.AddChild(stack)

	// Labels are aligned separately since they account for padding.
	for _, view := range views[1:] {
		retained.Activate(
			stack.LeadingAnchor().ConstraintEqualTo(view.LeadingAnchor(), 0),
			stack.TrailingAnchor().ConstraintEqualTo(view.TrailingAnchor(), 0),
		)
	}
	retained.Activate(retained.PinEdges(stack, parent)...)
	return stack
}

func (v *ActionSheetPrimaryView) buildLabels(parent *retained.Widget, style VisualStyle) {
	v.labelBackground.Widget().SetHidden(v.title == "" && v.message == "")
	parent.AddChild(v.titleLabel)

	v.titleLabel.SetFont(style.TitleFont).SetTextColor(style.TitleColor)
	v.messageLabel.SetFont(style.MessageFont).SetTextColor(style.MessageColor)

	m := style.Labels
	if v.message != "" {
		parent.AddChild(v.messageLabel)
		retained.Activate(
			v.messageLabel.LeadingAnchor().ConstraintEqualTo(v.titleLabel.LeadingAnchor(), 0),
			v.messageLabel.TrailingAnchor().ConstraintEqualTo(v.titleLabel.TrailingAnchor(), 0),
			v.messageLabel.FirstBaselineAnchor().ConstraintEqualTo(v.titleLabel.LastBaselineAnchor(), m.MessageBaselineGap),
			v.messageLabel.LastBaselineAnchor().ConstraintEqualTo(parent.BottomAnchor(), -m.MessageBottomBaseline),
		)
	}

	v.titleBottom = v.titleLabel.LastBaselineAnchor().
		ConstraintEqualTo(parent.BottomAnchor(), -m.TitleBottomBaseline).
		Prioritized(retained.PriorityLow).
		Identified("title-bottom")
	retained.Activate(
		v.titleLabel.LeadingAnchor().ConstraintEqualTo(parent.LeadingAnchor(), 0),
		v.titleLabel.TrailingAnchor().ConstraintEqualTo(parent.TrailingAnchor(), 0),
		v.titleLabel.FirstBaselineAnchor().ConstraintEqualTo(parent.TopAnchor(), m.TitleTopBaseline),
		v.titleBottom,
	)
}

func (v *ActionSheetPrimaryView) buildContent(content *retained.Widget, style VisualStyle) {
	parent := v.contentSection
	parent.SetHidden(!content.HasChildren())
	parent.AddChild(content)

	top := style.VerticalElementSpacing / 2
	bottom := style.ContentPadding.Bottom
	retained.Activate(
		content.LeadingAnchor().ConstraintEqualTo(parent.LeadingAnchor(), 0),
		content.TrailingAnchor().ConstraintEqualTo(parent.TrailingAnchor(), 0),
		content.TopAnchor().ConstraintEqualTo(parent.TopAnchor(), top),
		content.BottomAnchor().ConstraintEqualTo(parent.BottomAnchor(), -bottom),
	)
}

func (v *ActionSheetPrimaryView) buildActions(actions []*Action, style VisualStyle) {
	v.actionsView.SetActions(actions, style)
	retained.Activate(
		v.actionsView.Widget().HeightAnchor().
			ConstraintEqualToConstant(v.actionsView.DisplayHeight()).
			Prioritized(retained.PriorityHigh).
			Identified("actions-height"),
	)
}
