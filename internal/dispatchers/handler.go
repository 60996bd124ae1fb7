package dispatchers

import "errors"

// ErrQuit is returned by a handler to end the command loop.
var ErrQuit = errors.New("quit")

// CommandFunc is the function invoked for a dispatched line.
type CommandFunc func(sh *Shell, call *Call) error

// Middleware decorates a CommandFunc.
type Middleware func(next CommandFunc) CommandFunc

// Handler is a named command of a shell.
//
// A handler produced by Wrap keeps a link to the handler it decorates in
// Wrapped. The dispatcher invokes the outer handler's Action but binds the
// line against the signature found by following Wrapped until a handler
// marked Authoritative (or one with no link) is reached.
type Handler struct {
	Name     string
	Summary  string
	Doc      string
	Category CommandCategory

	Signature *Signature

	// Raw handlers receive the unparsed remainder of the line in Call.Raw
	// and skip tokenizing, binding and casting.
	Raw bool

	// Authoritative stops signature resolution at this handler.
	Authoritative bool

	Wrapped *Handler
	Action  CommandFunc
}

// CommandSpec describes a command for the Command builder.
type CommandSpec struct {
	Name      string
	Summary   string
	Doc       string
	Category  CommandCategory
	Signature *Signature
	Raw       bool
	Action    CommandFunc
}

// Command creates a handler from a CommandSpec.
func Command(spec CommandSpec) *Handler {
	return &Handler{
		Name:          spec.Name,
		Summary:       spec.Summary,
		Doc:           spec.Doc,
		Category:      spec.Category,
		Signature:     spec.Signature,
		Raw:           spec.Raw,
		Authoritative: true,
		Action:        spec.Action,
	}
}

// Wrap decorates inner with mw. The result is transparent: it exposes
// inner's name, documentation and (through resolution) its signature.
func Wrap(inner *Handler, mw Middleware) *Handler {
	return &Handler{
		Name:     inner.Name,
		Summary:  inner.Summary,
		Doc:      inner.Doc,
		Category: inner.Category,
		Raw:      inner.Raw,
		Wrapped:  inner,
		Action:   mw(inner.Action),
	}
}

// WrapWithSignature decorates inner with mw and makes sig the signature
// the line is bound against, ending resolution at the wrapper.
func WrapWithSignature(inner *Handler, sig *Signature, mw Middleware) *Handler {
	h := Wrap(inner, mw)
	h.Signature = sig
	h.Authoritative = true
	return h
}

// Documented reports whether the handler has help text.
func (h *Handler) Documented() bool {
	return h.Doc != "" || h.Summary != ""
}
