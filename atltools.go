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

// Package atltools holds the numerical core shared by the atltools
// utilities for ICESat-2 ATL03, ATL06 and ATL09 granules: reconstruction
// of absolute along-track distance for every photon, signal-confidence
// masking, and order-preserving filtering of the resulting arrays.
//
// Everything in this package works on in-memory arrays and has no file
// system or display dependencies. Reading the arrays out of a granule is
// the job of package granule; writing and plotting them is done by the
// packages that drive the individual commands.
package atltools

// Version gives the version number.
const Version = "1.0.0"

// GroundTracks are the names of the six ATLAS ground tracks, in beam order.
var GroundTracks = []string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"}

// Signal confidence levels as stored in the ATL03
// /gtXX/heights/signal_conf_ph dataset. Higher values indicate higher
// confidence that a photon is a surface return rather than noise.
const (
	ConfidenceTEP           int64 = -2 // transmitter echo path photon
	ConfidenceNotConsidered int64 = -1
	ConfidenceNoise         int64 = 0
	ConfidenceBuffer        int64 = 1
	ConfidenceLow           int64 = 2
	ConfidenceMedium        int64 = 3
	ConfidenceHigh          int64 = 4
)

// DefaultConfidence is the minimum signal confidence used when none is
// specified.
const DefaultConfidence = ConfidenceHigh
