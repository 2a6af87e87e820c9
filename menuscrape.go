// Package menuscrape retrieves restaurant menus from a fixed catalog of
// websites and normalizes each one into a single artifact per source: plain
// text, a saved PDF, or a composed image.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package menuscrape
