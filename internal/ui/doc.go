// Package ui contains the Fyne desktop window: URL entry, media info panel,
// the three download buttons and the feedback line. It presents session
// changes and forwards user intents to the fetch and download workflows.
// All UI strings are localized via Localization.
package ui
