// Package u200b marks up sequences of text fragments with an invisible
// marker so the joined string reads like plain concatenation while the
// fragment boundaries stay recoverable.
//
// The marked package holds the core Text type. The reveal package renders
// markers visibly for inspection.
package u200b
