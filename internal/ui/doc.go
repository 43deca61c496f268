// Package ui provides the terminal output of learngit.
//
// Everything the tutor says goes through a Feedback writer; command output
// from the learner's shell is passed through untouched. Styling uses Lip
// Gloss throughout.
//
// # Components Overview
//
//	Feedback      - Step headers, verdicts, hints and command errors
//	Prompt        - Line reader shared by the menu and every lesson
//	Spinner       - Status indicator while a lesson is fetched
//	PickLesson    - Arrow-key lesson picker using Huh forms (--pick)
//	RenderHeader  - Welcome banner
//	RenderLessonSummary - Steps, commands and time after a lesson
//
// # Color Scheme
//
// Feedback colors are ANSI codes so they follow the terminal theme:
//
//	ColorSuccess   (green)  - Correct commands, completed lessons
//	ColorError     (red)    - Failed commands
//	ColorWarning   (yellow) - Rejected commands, selection errors
//	ColorInfo      (cyan)   - Hints
//	ColorMuted     (gray)   - Secondary text, timing info
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Spinner Usage
//
//	s := ui.NewSpinnerTo(w, "Loading activity")
//	s.Start()
//	if err := fetch(); err != nil {
//	    s.Fail()
//	    return err
//	}
//	s.Success()
//
// The spinner only animates when w is a terminal; otherwise it prints a
// start line and a result line.
package ui
