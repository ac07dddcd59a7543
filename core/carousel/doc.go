// Package carousel implements the navigation state behind the project,
// experience and certification galleries.
//
// A Navigator is a wrapping cursor over a list of N items:
//
//	nav := carousel.New(len(doc.Projects))
//	defer nav.Close()
//
//	nav.Next()    // 0 -> 1, starts a 300ms cooldown
//	nav.Next()    // ignored until the cooldown timer fires
//	nav.JumpTo(2) // direct jump, no cooldown; ignored while transitioning
//
// Only the cooldown timer moves a Navigator from Transitioning back to Idle.
// Timers come from a Clock; tests use ManualClock and Advance it explicitly.
//
// Each item can carry its own image cursor, moved with AdvanceSub. Lists
// shorter than two images never move.
//
// Fixed-size pagination (the certification grid) uses PageOf and TotalPages,
// or a Pager when the page cursor must survive between requests:
//
//	items, page := carousel.PageOf(doc.Certifications, 3, 2)
//
// Close must be called when the owning view goes away so cooldown and
// auto-play timers stop.
package carousel
