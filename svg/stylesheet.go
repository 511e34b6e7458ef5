// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/beevik/etree"
)

// collectStylesheets parses every <style> element in the document into
// the converter's rule list. A stylesheet that fails to parse is
// logged and skipped.
func (c *converter) collectStylesheets(root *etree.Element) {
	for _, e := range root.FindElements("//style") {
		text := elementText(e)
		if strings.TrimSpace(text) == "" {
			continue
		}
		c.flagRemoteStylesheetRefs(text)
		sheet, err := parser.Parse(text)
		if err != nil {
			c.logger.Warn("svg: cannot parse stylesheet", "err", err)
			continue
		}
		c.rules = append(c.rules, sheet.Rules...)
	}
}

var remoteURLRx = regexp.MustCompile(`url\(\s*['"]?(https?://[^'")\s]+)|@import\s+['"](https?://[^'"]+)`)

// flagRemoteStylesheetRefs records remote resources a stylesheet pulls
// in, such as @import targets and web font sources. They are flagged
// in the result, never fetched.
func (c *converter) flagRemoteStylesheetRefs(text string) {
	for _, m := range remoteURLRx.FindAllStringSubmatch(text, -1) {
		url := m[1]
		if url == "" {
			url = m[2]
		}
		c.res.ExternalRefs = append(c.res.ExternalRefs, url)
	}
}

// applyStylesheet applies the document's stylesheet rules to the
// element's style, in three passes of increasing specificity: type
// selectors, class selectors, then id selectors.
func (c *converter) applyStylesheet(e *etree.Element, st *style) {
	if len(c.rules) == 0 {
		return
	}
	tag := localTag(e)
	classes := strings.Fields(attr(e, "", "class"))
	id := attr(e, "", "id")

	c.applyMatching(st, func(sel string) bool {
		return sel == tag
	})
	c.applyMatching(st, func(sel string) bool {
		if !strings.HasPrefix(sel, ".") {
			return false
		}
		for _, cl := range classes {
			if sel == "."+cl {
				return true
			}
		}
		return false
	})
	if id != "" {
		c.applyMatching(st, func(sel string) bool {
			return sel == "#"+id
		})
	}
}

// applyMatching applies the declarations of every rule with a selector
// accepted by match.
func (c *converter) applyMatching(st *style, match func(sel string) bool) {
	for _, r := range c.rules {
		if !ruleMatches(r, match) {
			continue
		}
		for _, d := range r.Declarations {
			name := strings.TrimSpace(d.Property)
			if stylePropertyNames[name] {
				st.props[name] = strings.TrimSpace(d.Value)
			}
		}
	}
}

func ruleMatches(r *css.Rule, match func(sel string) bool) bool {
	for _, sel := range r.Selectors {
		if match(strings.TrimSpace(sel)) {
			return true
		}
	}
	return false
}
