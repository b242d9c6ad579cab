// Package trace turns a search result back into a story.
//
// The search engine records, on every state, which robot (if any) was
// started on the transition from its parent. Decisions walks that parent
// chain into the per-minute build list; Narrate replays it minute by
// minute in the puzzle's narration voice:
//
//	== Minute 3 ==
//	Spend 2 ore to start building a clay-collecting robot.
//	1 ore-collecting robot collects 1 ore; you now have 1 ore.
//	The new clay-collecting robot is ready; you now have 1 of them.
//
// The recorded path covers the minutes the driver actually expanded.
// Past its end, narration finishes with the lower-bound policy — build a
// geode robot whenever affordable — which is exactly the schedule whose
// score the result reports, so the narrated total always matches
// Result.Geodes.
//
// Nothing here is needed for correctness of the answer; it exists for
// humans checking a schedule by hand.
package trace
