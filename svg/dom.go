// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// readDocument reads an XML document from the given reader into a
// tree-walkable DOM, tolerating non-UTF8 charsets and unknown entities
// the way browsers do.
func readDocument(reader io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.Permissive = true
	if _, err := doc.ReadFrom(reader); err != nil {
		return nil, err
	}
	return doc, nil
}

// localTag returns the element tag with any namespace prefix stripped.
func localTag(e *etree.Element) string {
	return e.Tag
}

// attr returns the value of the first of the given attribute names
// present on the element, ignoring namespace prefixes, or def if none
// is present.
func attr(e *etree.Element, def string, names ...string) string {
	for _, nm := range names {
		for _, a := range e.Attr {
			if a.Key == nm {
				return a.Value
			}
		}
	}
	return def
}

// hasAttr returns whether the element carries the given attribute
// under any namespace prefix.
func hasAttr(e *etree.Element, name string) bool {
	for _, a := range e.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// href returns the hyperlink/resource reference of the element,
// checking the plain href attribute first and the xlink-prefixed form
// second, per SVG 2 precedence.
func href(e *etree.Element) string {
	xlink := ""
	for _, a := range e.Attr {
		if a.Key != "href" {
			continue
		}
		if a.Space == "" {
			return a.Value
		}
		xlink = a.Value
	}
	return xlink
}

// nameFromURL returns the id for a url(#name) value, or "" if the
// value is not a url reference.
func nameFromURL(url string) string {
	if len(url) < 6 {
		return ""
	}
	if url[:5] != "url(#" {
		return ""
	}
	ref := url[5:]
	sz := len(ref)
	if sz > 0 && ref[sz-1] == ')' {
		ref = ref[:sz-1]
	}
	return ref
}

// elementText returns the text content directly inside the element,
// with surrounding whitespace trimmed.
func elementText(e *etree.Element) string {
	return strings.TrimSpace(e.Text())
}

// isRemoteRef reports whether the given reference points outside the
// document: an absolute http(s) URL or a protocol-relative URL.
func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//")
}
