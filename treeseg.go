// Package treeseg segments templated HTML pages into content and boilerplate.
// It compares several parallel HTML trees built from the same template,
// finds where the shared markup ends and page-specific material begins,
// and ranks the resulting segments so content comes before boilerplate.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, rod/).
// The segmentation algorithm itself lives in hierarchical/.
package treeseg
