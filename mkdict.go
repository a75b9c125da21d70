// Package mkdict harvests the lexical content of a bilingual Macedonian
// dictionary site and serializes it as a structured word list.
//
// The crawl is hierarchical: every alphabet letter yields range URIs, every
// range yields word URIs, and every word page yields a WordRecord. Stage
// outputs are checkpointed so that reruns can resume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package mkdict
