package alert

import (
	"fmt"

	"github.com/agiangrant/alertsheet/retained"
)

// ActionSheetCancelActionView is the detached block below an action sheet's
// primary view holding its single cancel action.
type ActionSheetCancelActionView struct {
	root        *retained.Widget
	background  Surface
	actionsView *ActionsView
	cancel      *Action
	built       bool
}

// NewActionSheetCancelActionView creates an unbuilt cancel block.
func NewActionSheetCancelActionView() *ActionSheetCancelActionView {
	return &ActionSheetCancelActionView{
		root:        retained.Container(),
		actionsView: NewActionsView(),
	}
}

// Root returns the block's root widget.
func (v *ActionSheetCancelActionView) Root() *retained.Widget { return v.root }

// CancelAction returns the action shown in the block, or nil.
func (v *ActionSheetCancelActionView) CancelAction() *Action { return v.cancel }

// ActionsView returns the single-row actions list.
func (v *ActionSheetCancelActionView) ActionsView() *ActionsView { return v.actionsView }

// Background returns the block's surface, or nil before BuildView.
func (v *ActionSheetCancelActionView) Background() Surface { return v.background }

// SetCancelTapHandler sets the callback for a tap on the cancel row.
func (v *ActionSheetCancelActionView) SetCancelTapHandler(fn func(*Action)) {
	v.actionsView.SetActionTapped(fn)
}

// SetArmedCell connects the row to a shared armed-action cell.
func (v *ActionSheetCancelActionView) SetArmedCell(cell *ArmedCell) {
	v.actionsView.SetArmedCell(cell)
}

// HighlightAction is the pan-gesture target for drag-to-select.
func (v *ActionSheetCancelActionView) HighlightAction(g *retained.PanGestureRecognizer) {
	v.actionsView.HighlightAction(g)
}

// BuildView assembles the block. A nil cancel action yields a hidden block
// of zero height.
func (v *ActionSheetCancelActionView) BuildView(cancel *Action, style VisualStyle) error {
	if v.built {
		return fmt.Errorf("cancel view: %w", ErrAlreadyBuilt)
	}
	v.built = true
	v.cancel = cancel

	v.root.SetCornerRadius(style.CornerRadius).SetMasksToBounds(true)
	v.background = newBackground(style)
	v.root.AddChild(v.background.Widget())
	retained.Activate(retained.PinEdges(v.background.Widget(), v.root)...)

	var actions []*Action
	if cancel != nil {
		actions = []*Action{cancel}
	} else {
		v.root.SetHidden(true)
	}
	v.actionsView.SetActions(actions, style)

	list := v.actionsView.Widget()
	v.background.Content().AddChild(list)
	retained.Activate(retained.PinEdges(list, v.background.Content())...)
	retained.Activate(
		list.HeightAnchor().ConstraintEqualToConstant(v.actionsView.DisplayHeight()).Identified("cancel-height"),
	)
	return nil
}
