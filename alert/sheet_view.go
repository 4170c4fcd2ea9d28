package alert

import (
	"fmt"

	"github.com/agiangrant/alertsheet/retained"
)

// ActionSheetView composes an action sheet: the primary block on top and
// the detached cancel block below it, separated by the section spacing.
type ActionSheetView struct {
	root       *retained.Widget
	primary    *ActionSheetPrimaryView
	cancelView *ActionSheetCancelActionView

	content  *retained.Widget
	actions  []*Action
	style    VisualStyle
	safeArea retained.SafeAreaInsets

	cell         *ArmedCell
	pan          *retained.PanGestureRecognizer
	actionTapped func(*Action)
	prepared     bool
}

// NewActionSheetView creates an action sheet for actions. Layout is built by
// PrepareLayout.
func NewActionSheetView(style VisualStyle, actions []*Action, content *retained.Widget) *ActionSheetView {
	v := &ActionSheetView{
		root:       retained.Container(),
		primary:    NewActionSheetPrimaryView(),
		cancelView: NewActionSheetCancelActionView(),
		content:    content,
		actions:    append([]*Action(nil), actions...),
		style:      style,
		cell:       NewArmedCell(),
	}
	v.primary.SetArmedCell(v.cell)
	v.cancelView.SetArmedCell(v.cell)
	return v
}

func (v *ActionSheetView) Root() *retained.Widget { return v.root }

func (v *ActionSheetView) ArmedCell() *ArmedCell { return v.cell }

// Primary returns the primary block.
func (v *ActionSheetView) Primary() *ActionSheetPrimaryView { return v.primary }

// CancelView returns the cancel block.
func (v *ActionSheetView) CancelView() *ActionSheetCancelActionView { return v.cancelView }

// Actions returns the actions shown in the primary block. Before
// PrepareLayout it returns every action.
func (v *ActionSheetView) Actions() []*Action {
	out := make([]*Action, len(v.actions))
	copy(out, v.actions)
	return out
}

// PanGesture returns the drag-to-select recognizer, or nil if not installed.
func (v *ActionSheetView) PanGesture() *retained.PanGestureRecognizer { return v.pan }

func (v *ActionSheetView) SetTitle(title string) { v.primary.SetTitle(title) }

func (v *ActionSheetView) SetMessage(message string) { v.primary.SetMessage(message) }

func (v *ActionSheetView) SetSafeAreaInsets(insets retained.SafeAreaInsets) { v.safeArea = insets }

func (v *ActionSheetView) SetActionTappedHandler(fn func(*Action)) {
	v.actionTapped = fn
	v.primary.SetActionTapped(fn)
	v.cancelView.SetCancelTapHandler(fn)
}

// PrepareLayout extracts the cancel action, builds both blocks and stacks
// them. The cancel block sits above the bottom safe area plus the corner
// radius.
func (v *ActionSheetView) PrepareLayout() error {
	if v.prepared {
		return fmt.Errorf("action sheet: %w", ErrAlreadyBuilt)
	}
	v.prepared = true

	style := v.style
	v.root.SetBackgroundColor(style.BackgroundColor).
		SetCornerRadius(style.CornerRadius).
		SetMasksToBounds(true)

	v.root.AddChild(v.primary.Root())
	v.root.AddChild(v.cancelView.Root())

	cancel, rest := ExtractCancelAction(v.actions)
	v.actions = rest
	if err := v.cancelView.BuildView(cancel, style); err != nil {
		return err
	}
	if err := v.primary.BuildView(v.actions, v.content, style); err != nil {
		return err
	}

	spacing := style.ActionSheetVerticalSectionSpacing
	bottom := v.safeArea.Bottom + style.CornerRadius
	primary, cancelRoot := v.primary.Root(), v.cancelView.Root()
	retained.Activate(
		primary.LeadingAnchor().ConstraintEqualTo(v.root.LeadingAnchor(), 0),
		primary.TrailingAnchor().ConstraintEqualTo(v.root.TrailingAnchor(), 0),
		primary.TopAnchor().ConstraintEqualTo(v.root.TopAnchor(), 0),
		primary.BottomAnchor().ConstraintEqualTo(cancelRoot.TopAnchor(), -spacing),

		cancelRoot.LeadingAnchor().ConstraintEqualTo(v.root.LeadingAnchor(), 0),
		cancelRoot.TrailingAnchor().ConstraintEqualTo(v.root.TrailingAnchor(), 0),
		cancelRoot.BottomAnchor().ConstraintEqualTo(v.root.BottomAnchor(), -bottom),
	)
	Logger.Debug("action sheet prepared",
		"actions", len(v.actions), "cancel", cancel != nil, "safe_area_bottom", v.safeArea.Bottom)
	return nil
}

// AddBehaviors installs a single pan recognizer on the sheet that feeds
// both blocks when BehaviorDragTap is set.
func (v *ActionSheetView) AddBehaviors(b Behaviors) {
	if !b.Contains(BehaviorDragTap) || v.pan != nil {
		return
	}
	v.pan = newDragTap(v.cell, v.activate, v.primary.HighlightAction, v.cancelView.HighlightAction)
	v.root.AddGestureRecognizer(v.pan)
}

func (v *ActionSheetView) activate(a *Action) {
	if v.actionTapped != nil {
		v.actionTapped(a)
	}
}
