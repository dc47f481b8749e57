/*
Copyright © 2018 the atltools authors.
This file is part of atltools.

atltools is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

atltools is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with atltools.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package egi downloads ICESat-2 granules from the NSIDC EGI
// (Earthdata Global Interface) subsetting service.
package egi

import (
	"fmt"
	"strings"
	"time"

	"github.com/icesat2/atltools"
)

// DefaultEndpoint is the EGI request URL.
const DefaultEndpoint = "https://n5eil02u.ecs.nsidc.org/egi/request"

// Product describes how requests are built for one data product.
type Product struct {
	ShortName string
	Version   string
	PageSize  int

	// BoundingBox is true if the spatial subsetting parameter is sent
	// even when subsetting is not requested.
	BoundingBox bool

	// NoBBox is true if the product is queried by time only.
	NoBBox bool

	// RequireTime is true if a time range must be given.
	RequireTime bool
}

// The supported products.
var (
	ATL03 = Product{ShortName: "ATL03", Version: "200", PageSize: 1000}
	ATL06 = Product{ShortName: "ATL06", Version: "001", PageSize: 99, BoundingBox: true}
	ATL09 = Product{ShortName: "ATL09", Version: "200", PageSize: 1000, NoBBox: true, RequireTime: true}
)

// LookupProduct returns the product with the given short name
// (case-insensitive).
func LookupProduct(name string) (Product, error) {
	for _, p := range []Product{ATL03, ATL06, ATL09} {
		if strings.EqualFold(p.ShortName, name) {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("egi: unsupported product %q", name)
}

// Request holds the parameters of a granule query.
type Request struct {
	Product Product

	// Version overrides the product's default version if not empty.
	Version string

	Token string
	BBox  *atltools.BBox

	// Subset requests spatially subsetted granules. Otherwise whole
	// granules are returned.
	Subset bool

	// Time is a time range of the form
	// YYYY-MM-DDTHH:MM:SS,YYYY-MM-DDTHH:MM:SS.
	Time string

	// Endpoint replaces DefaultEndpoint if not empty.
	Endpoint string
}

const timeLayout = "2006-01-02T15:04:05"

// Validate checks that r has the parameters its product needs.
func (r *Request) Validate() error {
	if r.Token == "" {
		return ErrNoToken
	}
	if r.BBox == nil && !r.Product.NoBBox {
		return fmt.Errorf("egi: %s query requires a bounding box", r.Product.ShortName)
	}
	if r.Time == "" {
		if r.Product.RequireTime {
			return fmt.Errorf("egi: %s query requires a time range", r.Product.ShortName)
		}
		return nil
	}
	parts := strings.Split(r.Time, ",")
	if len(parts) != 2 {
		return fmt.Errorf("egi: time range %q must have the form start,end", r.Time)
	}
	var t [2]time.Time
	for i, p := range parts {
		var err error
		if t[i], err = time.Parse(timeLayout, p); err != nil {
			return fmt.Errorf("egi: time range %q: %v", r.Time, err)
		}
	}
	if t[1].Before(t[0]) {
		return fmt.Errorf("egi: time range %q ends before it starts", r.Time)
	}
	return nil
}

// URL returns the request URL for the given page. Pages are numbered
// from 1; a page less than 1 omits the page number.
func (r *Request) URL(page int) string {
	version := r.Product.Version
	if r.Version != "" {
		version = r.Version
	}
	endpoint := DefaultEndpoint
	if r.Endpoint != "" {
		endpoint = r.Endpoint
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s?short_name=%s&version=%s&page_size=%d&token=%s",
		endpoint, r.Product.ShortName, version, r.Product.PageSize, r.Token)
	if r.BBox != nil && !r.Product.NoBBox {
		b.WriteString("&bbox=" + r.BBox.String())
	}
	if !r.Subset {
		b.WriteString("&agent=NO")
	}
	if r.BBox != nil && !r.Product.NoBBox && (r.Subset || r.Product.BoundingBox) {
		b.WriteString("&bounding_box=" + r.BBox.String())
	}
	if r.Time != "" {
		b.WriteString("&time=" + r.Time)
	}
	if page > 0 {
		fmt.Fprintf(&b, "&page_num=%d", page)
	}
	return b.String()
}
