// Package session holds the application state machine: the prompt form, the
// current phase and the carousel position over a displayed result.
package session

import "github.com/alexisbeaulieu97/storybox/internal/story"

// FailureMessage is the only error text users ever see.
const FailureMessage = "The muses are silent. The story could not be written. Please try again."

// Phase is one of Editing, Loading, Displaying or Failed.
type Phase interface {
	Name() string
	isPhase()
}

// Editing is the initial phase: the form is live and submit is possible.
type Editing struct{}

// Loading holds the single in-flight request.
type Loading struct {
	Request story.Request
}

// Displaying holds a successful result.
type Displaying struct {
	Result story.Result
}

// Failed holds the user-facing failure message.
type Failed struct {
	Message string
}

func (Editing) Name() string    { return "editing" }
func (Loading) Name() string    { return "loading" }
func (Displaying) Name() string { return "displaying" }
func (Failed) Name() string     { return "failed" }

func (Editing) isPhase()    {}
func (Loading) isPhase()    {}
func (Displaying) isPhase() {}
func (Failed) isPhase()     {}
