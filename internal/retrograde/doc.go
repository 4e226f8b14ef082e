// Package retrograde fetches Mercury's retrograde status for the current
// calendar date and turns it into something a screen can show.
//
// A Controller owns exactly one request per mount:
//
//	Loading ──fetch ok──▶ Resolved{Retrograde, Meta}
//	   │
//	   └──fetch error──▶ Failed{Message}
//
// Stop cancels the request; a controller stopped before it settles never
// leaves Loading.
// DerivePresentation is a pure mapping from State to headline, subtext and
// labeled date cards.
package retrograde
