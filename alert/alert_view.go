package alert

import (
	"fmt"

	"github.com/agiangrant/alertsheet/retained"
)

// AlertView is a plain alert: one rounded block holding labels, content and
// every action.
type AlertView struct {
	root    *retained.Widget
	primary *ActionSheetPrimaryView

	content *retained.Widget
	actions []*Action
	style   VisualStyle

	cell         *ArmedCell
	pan          *retained.PanGestureRecognizer
	actionTapped func(*Action)
	prepared     bool
}

// NewAlertView creates an alert for actions.
func NewAlertView(style VisualStyle, actions []*Action, content *retained.Widget) *AlertView {
	v := &AlertView{
		root:    retained.Container(),
		primary: NewActionSheetPrimaryView(),
		content: content,
		actions: append([]*Action(nil), actions...),
		style:   style,
		cell:    NewArmedCell(),
	}
	v.primary.SetArmedCell(v.cell)
	return v
}

func (v *AlertView) Root() *retained.Widget { return v.root }

func (v *AlertView) ArmedCell() *ArmedCell { return v.cell }

// Primary returns the alert's single block.
func (v *AlertView) Primary() *ActionSheetPrimaryView { return v.primary }

// PanGesture returns the drag-to-select recognizer, or nil if not installed.
func (v *AlertView) PanGesture() *retained.PanGestureRecognizer { return v.pan }

func (v *AlertView) SetTitle(title string) { v.primary.SetTitle(title) }

func (v *AlertView) SetMessage(message string) { v.primary.SetMessage(message) }

// SetSafeAreaInsets is a no-op; alerts are centered away from the edges.
func (v *AlertView) SetSafeAreaInsets(retained.SafeAreaInsets) {}

func (v *AlertView) SetActionTappedHandler(fn func(*Action)) {
	v.actionTapped = fn
	v.primary.SetActionTapped(fn)
}

func (v *AlertView) PrepareLayout() error {
	if v.prepared {
		return fmt.Errorf("alert: %w", ErrAlreadyBuilt)
	}
	v.prepared = true

	v.root.SetCornerRadius(v.style.CornerRadius).SetMasksToBounds(true)
	v.root.AddChild(v.primary.Root())
	if err := v.primary.BuildView(v.actions, v.content, v.style); err != nil {
		return err
	}
	retained.Activate(retained.PinEdges(v.primary.Root(), v.root)...)
	return nil
}

func (v *AlertView) AddBehaviors(b Behaviors) {
	if !b.Contains(BehaviorDragTap) || v.pan != nil {
		return
	}
	v.pan = newDragTap(v.cell, v.activate, v.primary.HighlightAction)
	v.root.AddGestureRecognizer(v.pan)
}

func (v *AlertView) activate(a *Action) {
	if v.actionTapped != nil {
		v.actionTapped(a)
	}
}
