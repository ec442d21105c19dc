// Package viewer is the boundary to the external 3D rendering collaborator.
// The app only hands an asset over and isolates failures; rendering itself
// happens in another process.
package viewer

// Fallback is shown in place of a preview when the renderer fails.
const Fallback = "failed to load — try downloading instead"

// Preview runs the render closure and returns its output. Any error or panic
// from the collaborator is replaced with the fallback text; the surrounding
// UI must never crash because an asset would not render.
func Preview(render func() (string, error), fallback string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback
		}
	}()
	s, err := render()
	if err != nil {
		return fallback
	}
	return s
}
