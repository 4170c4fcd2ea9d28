package alert

import (
	"github.com/agiangrant/alertsheet/retained"
)

// ActionsView lists actions as fixed-height rows inside a clipping scroll
// container.
type ActionsView struct {
	root    *retained.Widget
	rows    []*retained.Widget
	actions []*Action
	style   VisualStyle

	cell         *ArmedCell
	actionTapped func(*Action)
}

// NewActionsView creates an empty actions list.
func NewActionsView() *ActionsView {
	return &ActionsView{root: retained.ScrollView()}
}

// Widget returns the list's container widget.
func (v *ActionsView) Widget() *retained.Widget {
	return v.root
}

// Actions returns the listed actions in display order.
func (v *ActionsView) Actions() []*Action {
	out := make([]*Action, len(v.actions))
	copy(out, v.actions)
	return out
}

// Rows returns the row widgets in display order.
func (v *ActionsView) Rows() []*retained.Widget {
	out := make([]*retained.Widget, len(v.rows))
	copy(out, v.rows)
	return out
}

// SetActionTapped sets the callback invoked when a row is tapped.
func (v *ActionsView) SetActionTapped(fn func(*Action)) {
	v.actionTapped = fn
}

// SetArmedCell connects the list to the shared armed-action cell. Rows are
// highlighted whenever the cell publishes their action.
func (v *ActionsView) SetArmedCell(cell *ArmedCell) {
	v.cell = cell
	cell.Observe(v.renderArmed)
}

// SetActions replaces the rows.
func (v *ActionsView) SetActions(actions []*Action, style VisualStyle) {
	for _, row := range v.rows {
		v.root.RemoveChild(row)
	}
	v.rows = v.rows[:0]
	v.actions = append([]*Action(nil), actions...)
	v.style = style

	height := style.ActionRowHeight
	for i, action := range v.actions {
		a := action
		row := retained.Button(a.Title, func() { v.tap(a) })
		row.SetFont(style.font(a.Style)).
			SetTextColor(style.textColor(a.Style)).
			SetData(a)
		v.root.AddChild(row)

		retained.Activate(
			row.LeadingAnchor().ConstraintEqualTo(v.root.LeadingAnchor(), 0),
			row.TrailingAnchor().ConstraintEqualTo(v.root.TrailingAnchor(), 0),
			row.TopAnchor().ConstraintEqualTo(v.root.TopAnchor(), float32(i)*height),
			row.HeightAnchor().ConstraintEqualToConstant(height),
		)
		v.rows = append(v.rows, row)
	}
}

// DisplayHeight is the height needed to show every row.
func (v *ActionsView) DisplayHeight() float32 {
	return float32(len(v.actions)) * v.style.ActionRowHeight
}

// ActionAt returns the action whose row contains the screen point, or nil.
func (v *ActionsView) ActionAt(x, y float32) *Action {
	if v.root.IsHidden() || !v.root.Frame().Contains(x, y) {
		return nil
	}
	for i, row := range v.rows {
		if row.Frame().Contains(x, y) {
			return v.actions[i]
		}
	}
	return nil
}

// HighlightAction offers the row under the gesture's pointer to the armed
// cell. It is a pan-gesture target.
func (v *ActionsView) HighlightAction(g *retained.PanGestureRecognizer) {
	if v.cell == nil || g.State() == retained.GestureCancelled {
		return
	}
	v.cell.Offer(v.ActionAt(g.Location()))
}

func (v *ActionsView) tap(a *Action) {
	if v.actionTapped != nil {
		v.actionTapped(a)
	}
}

func (v *ActionsView) renderArmed(armed *Action) {
	for i, row := range v.rows {
		row.SetHighlighted(armed != nil && v.actions[i] == armed)
	}
}
