// Package icons resolves declared icon specs to renderable glyph handles.
//
// A spec is "style:name" or bare "name" (style defaults to filled).
// Resolution never fails for a non-empty spec: unknown names degrade to
// the style's default glyph and unknown styles degrade to filled, each
// with a warning. A small alias table maps convenience names to the
// canonical identifiers the render runtime knows.
package icons
