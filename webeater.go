// Package webeater extracts readable main-content text from web pages.
// It renders a page in a headless browser, strips noise elements, locates
// the main content region using layered, user-configurable "hints", and
// converts the result to markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package webeater
