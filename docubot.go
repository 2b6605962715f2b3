// Package docubot ingests web content into a searchable knowledge base for
// retrieval-augmented question answering. It crawls sites breadth-first under
// a concurrency bound, extracts structured content with a markdown-preserving
// representation, splits pages into overlapping chunks, and hands chunk
// batches to an index sink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bleve/).
package docubot
