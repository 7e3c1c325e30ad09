// Package hero renders the product hero block.
//
// The block exists in two siblings built from the same layout decision: RenderSection
// executes an html/template section driven by theme settings, and Component builds a
// gomponents node tree. Both emit section, row, image cluster and content cluster in a
// fixed DOM order; the image-right layout only reverses the visual flex direction.
package hero
