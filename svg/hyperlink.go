// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/ir"
)

// jumpTargets are the recognized presentation jump actions.
var jumpTargets = map[string]bool{
	"firstslide":    true,
	"lastslide":     true,
	"nextslide":     true,
	"previousslide": true,
	"endshow":       true,
}

// navigationFor extracts the navigation action of an a element. The
// slide-targeting data attributes take precedence over the href, so a
// link can degrade to a URL in plain SVG viewers while still jumping
// between slides after conversion. Order: data-slide, data-bookmark,
// data-custom-show, data-jump, then href. Without any of these the
// parent's navigation carries through.
func (c *converter) navigationFor(e *etree.Element, parent *ir.NavigationSpec) *ir.NavigationSpec {
	nav := &ir.NavigationSpec{Tooltip: linkTooltip(e)}
	if v := attr(e, "", "data-slide"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 1 {
			nav.Kind = ir.NavSlide
			nav.SlideIndex = n
			return nav
		}
		// an invalid attribute is ignored and the next candidate tried
		c.logger.Warn("svg: invalid data-slide value", "value", v)
	}
	if v := attr(e, "", "data-bookmark"); v != "" {
		nav.Kind = ir.NavBookmark
		nav.Target = v
		return nav
	}
	if v := attr(e, "", "data-custom-show"); v != "" {
		nav.Kind = ir.NavCustomShow
		nav.Target = v
		return nav
	}
	if v := attr(e, "", "data-jump"); v != "" {
		if jumpTargets[v] {
			nav.Kind = ir.NavJump
			nav.Target = v
			return nav
		}
		c.logger.Warn("svg: unknown data-jump target", "target", v)
	}
	if url := href(e); url != "" {
		nav.Kind = ir.NavExternal
		nav.URL = url
		if isRemoteRef(url) {
			c.res.ExternalRefs = append(c.res.ExternalRefs, url)
		}
		return nav
	}
	return parent
}

// linkTooltip reads the link's tooltip from a child title element or
// the xlink:title attribute.
func linkTooltip(e *etree.Element) string {
	for _, ch := range e.ChildElements() {
		if localTag(ch) == "title" {
			return elementText(ch)
		}
	}
	return attr(e, "", "title")
}
