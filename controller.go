// Package alertsheet presents styleable alerts and action sheets: a
// Controller collects the title, message, content and actions, builds the
// matching view tree and hands it to a presentation.Presenter, which runs
// the dimming backdrop and the appear and disappear transitions.
package alertsheet

import (
	"errors"
	"fmt"

	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/presentation"
	"github.com/agiangrant/alertsheet/retained"
)

// ErrFrozen is returned when actions are added after the view was built.
var ErrFrozen = errors.New("controller view already built")

// Controller is one alert or action sheet.
type Controller struct {
	title   string
	message string
	style   alert.VisualStyle

	behaviors alert.Behaviors
	content   *retained.Widget
	actions   []*alert.Action

	view      alert.View
	presenter *presentation.Presenter
}

// New creates a controller. Style.Kind selects alert or action sheet.
func New(title, message string, style alert.VisualStyle) *Controller {
	return &Controller{
		title:     title,
		message:   message,
		style:     style,
		behaviors: alert.BehaviorDragTap,
		content:   retained.Container(),
	}
}

// Title returns the title.
func (c *Controller) Title() string { return c.title }

// Message returns the message.
func (c *Controller) Message() string { return c.message }

// Style returns the visual style.
func (c *Controller) Style() alert.VisualStyle { return c.style }

// ContentView returns the container callers add custom content to. The
// content section is hidden while it has no children.
func (c *Controller) ContentView() *retained.Widget { return c.content }

// Actions returns the actions in the order they were added.
func (c *Controller) Actions() []*alert.Action {
	out := make([]*alert.Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// AddAction appends an action. Actions are fixed once the controller has
// been presented.
func (c *Controller) AddAction(a *alert.Action) error {
	if c.view != nil {
		return fmt.Errorf("add action %q: %w", a.Title, ErrFrozen)
	}
	c.actions = append(c.actions, a)
	return nil
}

// SetBehaviors replaces the optional interactions. The default enables
// drag-to-select.
func (c *Controller) SetBehaviors(b alert.Behaviors) {
	c.behaviors = b
}

// Behaviors returns the enabled interactions.
func (c *Controller) Behaviors() alert.Behaviors { return c.behaviors }

// View returns the built view, or nil before the first Present.
func (c *Controller) View() alert.View { return c.view }

// Present builds the view on first use and presents it with p. Completion
// runs when the presentation transition ends.
func (c *Controller) Present(p *presentation.Presenter, completion func(finished bool)) error {
	if c.view == nil {
		view := alert.NewView(c.style, c.title, c.message, c.actions, c.content)
		view.SetSafeAreaInsets(p.Screen().SafeArea)
		view.SetActionTappedHandler(c.actionTapped)
		if err := view.PrepareLayout(); err != nil {
			return fmt.Errorf("prepare layout: %w", err)
		}
		view.AddBehaviors(c.behaviors)
		c.view = view
	}

	if err := p.Present(c.view, presentation.NewTransition(c.style, c.behaviors), completion); err != nil {
		return err
	}
	c.presenter = p
	return nil
}

// Dismiss dismisses the controller from the presenter it was presented
// with.
func (c *Controller) Dismiss(completion func(finished bool)) error {
	if c.presenter == nil {
		return fmt.Errorf("dismiss: %w", presentation.ErrNotPresented)
	}
	return c.presenter.Dismiss(completion)
}

// actionTapped dismisses the controller and then runs the action's
// handler.
func (c *Controller) actionTapped(a *alert.Action) {
	err := c.Dismiss(func(bool) {
		if a.Handler != nil {
			a.Handler(a)
		}
	})
	if err != nil {
		alert.Logger.Debug("action ignored", "action", a.Title, "error", err)
	}
}
