// SPDX-License-Identifier: MIT

// Package diag estimates the statistics of generated fields for validation:
// per-field moments, empirical lag correlations along x and y, pooled
// ensemble summaries and the model values they should approach. Excursions
// labels the connected regions above a level.
//
// Lag correlations are taken over all cell pairs at the given offset. Pairs
// inside one parent reproduce the model exactly, pairs across parent
// boundaries only approximately, so a field's lag-1 estimate sits slightly
// below the model value.
package diag
