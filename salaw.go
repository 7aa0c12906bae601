// Package salaw answers natural-language questions about South African law.
// It maintains a local cache of a fixed catalog of legislative PDF documents,
// extracts their text on demand, and forwards context-augmented prompts to a
// chat-completion API, with keyword-based routing deciding which documents
// feed each question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, pdf/, gemini/).
package salaw
