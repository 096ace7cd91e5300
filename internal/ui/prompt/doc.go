// Package prompt provides the interactive prompts.
//
// A [Prompter] draws on a [term.Terminal] with a resolved symbol table and
// palette. Every prompt is a small state machine fed by [term.Terminal.ReadKey]
// and redrawn in place: option lines start with "\r" and the cursor is moved
// back up over the block after each render, so the block never scrolls.
//
// Available prompts:
//   - [Prompter.Text]: single-line text input
//   - [Prompter.Confirm]: yes/no toggle (left/right, enter)
//   - [Prompter.Select]: single selection from a ring of options (up/down, enter)
//   - [Prompter.MultiSelect], [Prompter.MultiSelectMax]: checkbox list with a
//     trailing "confirm" entry and an optional cap on selections
//
// Plus output helpers: [Prompter.Intro], [Prompter.Outro], [Prompter.Cancel],
// [Prompter.Log], [Prompter.Note] and [Prompter.RunWithSpinner].
//
// # Errors
//
// Validation errors ([ErrEmptyOptions], [InvalidMaxChoiceError]) are returned
// before anything is written. Terminal failures are wrapped in [IOError] and
// returned immediately; partially drawn output is left as is.
package prompt
