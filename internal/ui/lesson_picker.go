package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// LessonItem is one row in the lesson picker.
type LessonItem struct {
	Title      string
	Difficulty string
}

// QuitChoice is returned by the picker when the learner chooses to quit.
const QuitChoice = "q"

// PickerOptions builds the picker rows. Values are the same text the learner
// would type at the numbered menu, so both paths share one validator.
func PickerOptions(items []LessonItem) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(items)+1)
	for i, item := range items {
		label := item.Title
		if item.Difficulty != "" {
			label = fmt.Sprintf("%s - %s", item.Title, item.Difficulty)
		}
		options = append(options, huh.NewOption(label, strconv.Itoa(i+1)))
	}
	options = append(options, huh.NewOption("Quit", QuitChoice))
	return options
}

// PickLesson shows an arrow-key lesson picker and returns the menu input
// equivalent of the choice. Cancelling the form counts as quitting.
func PickLesson(items []LessonItem) (string, error) {
	selected := QuitChoice
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which activity would you like to do?").
				Options(PickerOptions(items)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return QuitChoice, nil
		}
		return "", err
	}
	return selected, nil
}
