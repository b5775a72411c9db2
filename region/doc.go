// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package region implements integer device-space regions as sorted
// y-bands of x-spans, with the boolean composition operators needed
// for clip algebra: intersect, union, difference and reverse
// difference.
//
// A Region is canonical at all times: bands are sorted, non-empty and
// non-overlapping, spans within a band are sorted and coalesced, and
// vertically adjacent bands with identical spans are merged. Canonical
// form makes Equal a structural comparison and keeps Combine linear in
// the number of spans.
//
// Regions are immutable values. Combine and Translate return new
// regions; the zero value is the empty region.
package region
