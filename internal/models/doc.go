// Package models defines the core domain types for Patungan.
//
// # Data Flow
//
// A bill is assembled outside the core (typically from an OCR'd receipt
// photo): line items with participant assignments, the list of friends,
// and four aggregate amounts (tax, service, delivery fee, discount).
// The calculator package turns that into one BreakdownEntry per friend,
// and the receipt package turns the breakdown into a shareable PNG.
//
// # Design Principles
//
//  1. Items and Friends are immutable inputs: the calculator and the
//     renderer never mutate them, and a breakdown is recomputed from
//     scratch on every call.
//  2. Item.Price is the line total, not a unit price. Quantity is shown
//     on the receipt but never weights the split.
//  3. Relationships use ID strings instead of pointers, so models can be
//     persisted and serialized without cycles.
package models
