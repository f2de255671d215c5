// Package ui is the Bubble Tea front end for the calculator.
//
// Core pieces:
//   - View: a screen with its own model, update, view (Elm-style)
//   - AppModel: root model switching between the calculator and the history tape
//   - CalculatorView: renders the display and keypad; implements calc.Surface
//   - HistoryView: bubbles/list over the operation tape
//   - OverlayStack: popup views with a dismiss key (the '?' help modal)
//   - KeybindRegistry/KeyHandler: SPC-leader command keys
//
// Key presses that form calculator tokens are delivered to the engine
// synchronously inside Update; the engine never sees Bubble Tea types.
package ui
