// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/base64"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

func (c *converter) convertImage(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	ref := href(e)
	if ref == "" {
		c.logger.Warn("svg: image without href, skipping")
		return nil
	}
	w := floatAttr(e, 0, "width")
	h := floatAttr(e, 0, "height")
	if w <= 0 || h <= 0 {
		c.logger.Debug("svg: dropping image with empty extent", "width", w, "height", h)
		return nil
	}
	img := &ir.Image{
		Bounds:  geom.NewRect(floatAttr(e, 0, "x"), floatAttr(e, 0, "y"), w, h),
		Opacity: clampUnit(st.float("opacity", 1)),
		Clip:    c.clipRefFor(st),
		Nav:     nav,
	}
	if xf := c.ownTransform(e); !xf.IsIdentity() {
		img.Transform = &xf
	}
	switch {
	case strings.HasPrefix(ref, "data:"):
		data, format, err := decodeDataURI(ref)
		if err != nil {
			c.logger.Warn("svg: cannot decode image data URI", "err", err)
			return nil
		}
		img.Data = data
		img.Format = format
	case isRemoteRef(ref):
		c.res.ExternalRefs = append(c.res.ExternalRefs, ref)
		img.Href = ref
		img.Format = formatFromExtension(ref)
	default:
		img.Href = ref
		img.Format = formatFromExtension(ref)
	}
	return img
}

// decodeDataURI decodes a base64 data URI and identifies the image
// format by sniffing the decoded bytes.
func decodeDataURI(uri string) (data []byte, format string, err error) {
	_, rest, _ := strings.Cut(uri, ":")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", errBadDataURI
	}
	if strings.HasSuffix(meta, ";base64") {
		data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if err != nil {
			return nil, "", err
		}
	} else {
		data = []byte(payload)
	}
	if t, err := filetype.Image(data); err == nil {
		return data, t.Extension, nil
	}
	if strings.Contains(meta, "svg") {
		return data, "svg", nil
	}
	return data, "png", nil
}

// formatFromExtension maps a file reference to an image format name,
// defaulting to png.
func formatFromExtension(ref string) string {
	low := strings.ToLower(ref)
	if i := strings.IndexAny(low, "?#"); i >= 0 {
		low = low[:i]
	}
	switch {
	case strings.HasSuffix(low, ".jpg"), strings.HasSuffix(low, ".jpeg"):
		return "jpg"
	case strings.HasSuffix(low, ".gif"):
		return "gif"
	case strings.HasSuffix(low, ".svg"):
		return "svg"
	}
	return "png"
}
