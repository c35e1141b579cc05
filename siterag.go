// Package siterag provides a retrieval-augmented question answering tool
// for a single website. It crawls the site breadth-first, extracts
// readable text into a JSON corpus, indexes that corpus into a local
// vector store, and answers questions by passing the most relevant
// passages to a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package siterag
